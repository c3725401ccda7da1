/*
Copyright 2025 The Uninames Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	goflag "flag"

	"uninames.dev/uninames/go/cmd/uninames/command"
	"uninames.dev/uninames/go/log"
)

func main() {
	// Pull in the glog flags so --v and friends keep working.
	command.Root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	if err := command.Root.Execute(); err != nil {
		log.Exitf("%v", err)
	}
}
