// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repl

import (
	"bytes"
	"context"
	"fmt"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
)

// FileReaderFunc reads the contents of a file.
type FileReaderFunc func(ctx context.Context, path string) ([]byte, error)

// ScriptResult holds what a loop wrote while running one script.
type ScriptResult struct {
	Path string
	// Output is everything written to the loop's output.
	Output string
	// Errors is everything written to the loop's error output.
	Errors string
}

// RunScripts runs every script in paths through a loop configured like opts,
// treating each line of a script as a line of input. The prompt is not
// written.
//
// Scripts are run concurrently, each by its own Loop. Results are returned in
// the order of paths. Per-line errors end up in ScriptResult.Errors; the
// returned error is only set if a script could not be read.
func RunScripts(ctx context.Context, opts Options, paths []string, readFile FileReaderFunc) ([]ScriptResult, error) {
	results := make([]ScriptResult, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			contents, err := readFile(ctx, path)
			if err != nil {
				return fmt.Errorf("failed to read script %q: %w", path, err)
			}
			scriptOpts := opts
			scriptOpts.Name = path
			scriptOpts.Prompt = ""

			out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
			if err := New(scriptOpts).Run(ctx, bytes.NewReader(contents), out, errOut); err != nil {
				return fmt.Errorf("script %q: %w", path, err)
			}
			results[i] = ScriptResult{path, out.String(), errOut.String()}
			glog.V(1).Infof("finished running %s", path)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
