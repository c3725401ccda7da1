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

package namedata

import (
	"sync"

	"uninames.dev/uninames/go/uninames"
)

var builtin = sync.OnceValue(func() *uninames.Table {
	tbl, err := uninames.NewTable(builtinRanges)
	if err != nil {
		// The ranges are generated and sorted by makenamedata; a bad
		// table means the generated file was edited by hand.
		panic(err)
	}
	return tbl
})
