// Package errors provides examples of structured error handling in slugger.
package errors_test

import (
	"fmt"
	"io"

	"github.com/ajitpratap0/slugger/pkg/errors"
)

// Example demonstrates basic error creation.
func Example() {
	err := errors.New(errors.ErrorTypeUsage, "unknown sort key").
		WithDetail("key", "ops")

	fmt.Println(err.Error())

	// Output:
	// usage: unknown sort key
}

// ExampleWrap shows how to wrap existing errors with context.
func ExampleWrap() {
	err := errors.Wrap(io.ErrUnexpectedEOF, errors.ErrorTypeFile, "failed to read batting file").
		WithDetail("file", "Batting.csv")

	if errors.IsType(err, errors.ErrorTypeFile) {
		fmt.Println("This is a file error")
	}
	fmt.Println(err)

	// Output:
	// This is a file error
	// file: failed to read batting file: unexpected EOF
}

// Example_rowHandling demonstrates skipping rows that fail validation
// while stopping on anything else.
func Example_rowHandling() {
	rows := []string{"90", "x12", "44"}

	for i, row := range rows {
		if err := parseRow(row); err != nil {
			switch {
			case errors.IsType(err, errors.ErrorTypeValidation):
				fmt.Printf("Skipping row %d: %v\n", i, err)
				continue
			default:
				fmt.Printf("Fatal error at row %d: %v\n", i, err)
				return
			}
		}
	}

	// Output:
	// Skipping row 1: validation: invalid integer
}

func parseRow(row string) error {
	if row[0] < '0' || row[0] > '9' {
		return errors.New(errors.ErrorTypeValidation, "invalid integer").
			WithDetail("value", row)
	}
	return nil
}

// ExampleIsType demonstrates checking error types through wrapping.
func ExampleIsType() {
	usageErr := errors.New(errors.ErrorTypeUsage, "unknown field")
	wrapped := errors.Wrap(usageErr, errors.ErrorTypeData, "top-k failed")

	fmt.Printf("Is usage error: %v\n", errors.IsUsage(usageErr))
	fmt.Printf("Wrapped error is data type: %v\n", errors.IsType(wrapped, errors.ErrorTypeData))
	fmt.Printf("Wrapped error is usage type: %v\n", errors.IsType(wrapped, errors.ErrorTypeUsage))

	// Output:
	// Is usage error: true
	// Wrapped error is data type: true
	// Wrapped error is usage type: false
}

// ExampleDetail shows how to read a detail back from an error.
func ExampleDetail() {
	err := errors.Newf(errors.ErrorTypeValidation, "invalid %s value", "AB").
		WithDetail("row", 7)

	row, _ := errors.Detail(err, "row")
	fmt.Println(err)
	fmt.Println("row:", row)

	// Output:
	// validation: invalid AB value
	// row: 7
}
