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

// Package repl implements a read-eval-print loop over a line-oriented input
// source.
//
// Each line is read with the reader package, handed to an Evaluator and the
// result is printed. Every cycle is independent: the tokens and tree built
// for a line are discarded once its output is written.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/golang/glog"
	"github.com/google/malreader/form"
	"github.com/google/malreader/formpb"
	"github.com/google/malreader/printer"
	"github.com/google/malreader/reader"
	"github.com/google/malreader/textpos"
)

const initialLineBufferSize = 64 * 1024

// ErrNoForm is returned by Rep for a line that contains no tokens.
var ErrNoForm = errors.New("no form to read")

// Evaluator evaluates a form read from one line of input.
type Evaluator interface {
	Eval(ctx context.Context, f form.Form) (form.Form, error)
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(ctx context.Context, f form.Form) (form.Form, error)

// Eval calls fn(ctx, f).
func (fn EvaluatorFunc) Eval(ctx context.Context, f form.Form) (form.Form, error) {
	return fn(ctx, f)
}

// Identity is an Evaluator that returns its argument unchanged.
var Identity Evaluator = EvaluatorFunc(func(_ context.Context, f form.Form) (form.Form, error) {
	return f, nil
})

// PrintFunc renders an evaluated form as one line of output.
type PrintFunc func(f form.Form) (string, error)

// CanonicalPrinter prints forms as canonical s-expression text.
func CanonicalPrinter(f form.Form) (string, error) {
	return printer.Print(f), nil
}

// JSONPrinter prints forms as protojson-encoded google.protobuf.Value
// messages.
func JSONPrinter(f form.Form) (string, error) {
	b, err := formpb.MarshalJSON(f)
	return string(b), err
}

// TextPrinter prints forms as prototext-encoded google.protobuf.Value
// messages.
func TextPrinter(f form.Form) (string, error) {
	b, err := formpb.MarshalText(f)
	return string(b), err
}

// Options configures a Loop.
type Options struct {
	// Name identifies the input in error messages, such as a script path.
	Name string

	// Prompt is written before each line is read. It may be empty.
	Prompt string

	// Evaluator is applied to every form read. Defaults to Identity.
	Evaluator Evaluator

	// Print renders evaluated forms. Defaults to CanonicalPrinter.
	Print PrintFunc

	// FailSoft makes a line holding an unterminated list print as an empty
	// list, after the error is reported, instead of printing nothing.
	FailSoft bool
}

// Loop is a read-eval-print loop. A Loop holds no per-line state and may be
// used from multiple goroutines if its Evaluator may.
type Loop struct {
	opts Options
}

// New returns a Loop using the given options.
func New(opts Options) *Loop {
	if opts.Evaluator == nil {
		opts.Evaluator = Identity
	}
	if opts.Print == nil {
		opts.Print = CanonicalPrinter
	}
	return &Loop{opts}
}

// Rep runs one read-eval-print cycle on line and returns the printed result.
//
// Only the first form on the line is read; trailing tokens are ignored. A line
// with no tokens returns ErrNoForm. If the line holds an unterminated list and
// FailSoft is set, Rep returns the printed empty list along with an error
// wrapping reader.ErrUnterminatedList.
func (l *Loop) Rep(ctx context.Context, line string) (string, error) {
	return l.rep(ctx, 1, line)
}

func (l *Loop) rep(ctx context.Context, lineNo int, line string) (string, error) {
	f, err := reader.NewReader(l.opts.Name, line, reader.FirstLine(textpos.LineFromOrdinal(lineNo))).ReadForm()
	var readErr error
	switch {
	case err == io.EOF:
		return "", ErrNoForm
	case errors.Is(err, reader.ErrUnterminatedList) && l.opts.FailSoft:
		f, readErr = form.NewList(), err
	case err != nil:
		return "", err
	}

	result, err := l.opts.Evaluator.Eval(ctx, f)
	if err != nil {
		err = fmt.Errorf("eval failed: %w", err)
		if readErr != nil {
			return "", &failSoftError{readErr, err}
		}
		return "", err
	}
	out, err := l.opts.Print(result)
	if err != nil {
		err = fmt.Errorf("print failed: %w", err)
		if readErr != nil {
			return "", &failSoftError{readErr, err}
		}
		return "", err
	}
	return out, readErr
}

// failSoftError is returned when evaluating or printing the empty list
// substituted for an unterminated one fails. It matches both errors.
type failSoftError struct {
	readErr, substituteErr error
}

func (e *failSoftError) Error() string {
	return fmt.Sprintf("%v; substituted empty list: %v", e.readErr, e.substituteErr)
}

func (e *failSoftError) Unwrap() error {
	return e.readErr
}

func (e *failSoftError) Is(target error) bool {
	return errors.Is(e.substituteErr, target)
}

// Run reads lines from in until end of input, writing the result of each
// cycle to out and reporting per-line errors to errOut. Per-line errors never
// stop the loop.
//
// Run returns nil at end of input, ctx.Err() if the context is done before a
// line is read, or an error from reading in or writing out.
func (l *Loop) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	sc := bufio.NewScanner(in)
	// Lines are only bounded by memory.
	sc.Buffer(make([]byte, 0, initialLineBufferSize), math.MaxInt32)
	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.opts.Prompt != "" {
			if _, err := io.WriteString(out, l.opts.Prompt); err != nil {
				return err
			}
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("error reading line %d: %w", lineNo, err)
			}
			return nil
		}
		glog.V(1).Infof("%s line %d: %q", l.name(), lineNo, sc.Text())

		result, err := l.rep(ctx, lineNo, sc.Text())
		if errors.Is(err, ErrNoForm) {
			continue
		}
		if err != nil {
			l.report(errOut, lineNo, err)
		}
		if result == "" {
			continue
		}
		if _, err := fmt.Fprintln(out, result); err != nil {
			return err
		}
	}
}

func (l *Loop) report(errOut io.Writer, lineNo int, err error) {
	glog.Warningf("%s line %d: %v", l.name(), lineNo, err)
	var rerr *reader.Error
	if l.opts.Name != "" && !errors.As(err, &rerr) {
		fmt.Fprintf(errOut, "error: %s:%d: %v\n", l.opts.Name, lineNo, err)
		return
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
}

func (l *Loop) name() string {
	if l.opts.Name == "" {
		return "<input>"
	}
	return l.opts.Name
}
