// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package retryaux

import (
	"context"
	"errors"
	"fmt"
	"time"
)

func ExampleRunner_defaults() {
	runner := NewRunner[string](Config{})
	fmt.Println(runner.Retries())

	// Output:
	// 3
}

func ExampleRunner_simple() {
	runner := NewRunner[string](Config{
		Retries:  2,
		Interval: 3 * time.Minute,

		// custom Check, if desired
		Check: func(err error) bool {
			return !errors.Is(err, errors.ErrUnsupported)
		},
	})
	fmt.Println(runner.Retries())

	// Output:
	// 2
}

func ExampleRunner_exponentialBackoff() {
	runner := NewRunner[string](Config{
		Retries:    5,
		Interval:   3 * time.Minute,
		Multiplier: 1.5,
	})
	fmt.Println(runner.Retries())

	// Output:
	// 5
}

func ExampleRun() {
	attempts := 0
	value, err := Run(context.Background(),
		Config{
			Retries:  2,
			Interval: time.Millisecond,
		},
		func(context.Context) (string, error) {
			attempts++
			if attempts < 2 {
				return "", errors.New("flaky")
			}

			return "it worked", nil
		},
	)

	fmt.Println(value, err, attempts)

	// Output:
	// it worked <nil> 2
}

func ExampleDo() {
	err := Do(context.Background(),
		Config{
			Retries:  1,
			Interval: time.Millisecond,
			OnRetry: func(_ context.Context, retry int, cause error) error {
				fmt.Println("retry", retry, "after", cause)
				return nil
			},
		},
		func(context.Context) error {
			return errors.New("broken")
		},
	)

	fmt.Println(err)

	// Output:
	// retry 1 after broken
	// broken
}
