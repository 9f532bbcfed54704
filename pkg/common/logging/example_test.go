/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package logging

import (
	"fmt"
)

func ExampleNewLogger() {
	logger := NewLogger("fabgateway/example")
	logger.Debug("not printed on stdout")

	fmt.Println("log is completed")

	// Output: log is completed
}

func ExampleLogLevel() {
	level, err := LogLevel("warning")
	if err != nil {
		fmt.Println(err)
		return
	}
	SetLevel("fabgateway/example", level)

	fmt.Println(GetLevel("fabgateway/example"))

	// Output: WARNING
}
