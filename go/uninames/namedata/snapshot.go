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
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"uninames.dev/uninames/go/uninames"
)

// snapshotVersion is bumped whenever the record layout changes.
const snapshotVersion = 1

// A snapshot is the portable form of a compiled table: zstd-compressed
// JSON. It exists so the table compiler and its consumers do not need to
// share a Go build.
type snapshot struct {
	Version int           `json:"version"`
	Ranges  []rangeRecord `json:"ranges"`
}

type rangeRecord struct {
	First   rune   `json:"first"`
	Length  int    `json:"length"`
	Stem    string `json:"stem"`
	Counter string `json:"counter,omitempty"`
	Type    string `json:"type,omitempty"`
	Tail    []rune `json:"tail,omitempty"`
}

var counterTags = map[uninames.CounterType]string{
	uninames.CounterNone:   "",
	uninames.CounterHex:    "hex",
	uninames.CounterHangul: "hangul",
}

// WriteSnapshot writes the table's ranges to w in snapshot form.
func WriteSnapshot(w io.Writer, tbl *uninames.Table) error {
	snap := snapshot{Version: snapshotVersion}
	for _, r := range tbl.Ranges() {
		snap.Ranges = append(snap.Ranges, rangeRecord{
			First:   r.First,
			Length:  r.Length,
			Stem:    r.Stem,
			Counter: counterTags[r.Counter],
			Type:    r.Type.String(),
			Tail:    r.Tail,
		})
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(zw).Encode(&snap); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadSnapshot reads a snapshot from r and builds a table from it.
func ReadSnapshot(r io.Reader) (*uninames.Table, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var snap snapshot
	if err := json.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}

	ranges := make([]uninames.NameRange, 0, len(snap.Ranges))
	for _, rec := range snap.Ranges {
		counter, ok := counterFromTag(rec.Counter)
		if !ok {
			return nil, fmt.Errorf("unknown counter type %q", rec.Counter)
		}
		typ, ok := uninames.NameTypeFromTag(rec.Type)
		if !ok {
			return nil, fmt.Errorf("unknown name type %q", rec.Type)
		}
		ranges = append(ranges, uninames.NameRange{
			First:   rec.First,
			Length:  rec.Length,
			Stem:    rec.Stem,
			Counter: counter,
			Type:    typ,
			Tail:    rec.Tail,
		})
	}
	return uninames.NewTable(ranges)
}

func counterFromTag(tag string) (uninames.CounterType, bool) {
	for counter, s := range counterTags {
		if s == tag {
			return counter, true
		}
	}
	return 0, false
}
