// Package history persists a log of successful calculations to a JSON
// file and prints it back newest-first. Each entry records the
// expression, the arithmetic type it was evaluated under, and the
// result; non-finite results are stored as readable strings since
// encoding/json refuses raw NaN and infinities.
package history

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"axioncore/value"
)

// JsonFloat marshals NaN/±Inf as strings instead of failing.
type JsonFloat float64

func (f JsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return json.Marshal("+Inf")
	case math.IsInf(v, -1):
		return json.Marshal("-Inf")
	case math.IsNaN(v):
		return json.Marshal("NaN")
	}
	return json.Marshal(v)
}

func (f *JsonFloat) UnmarshalJSON(data []byte) error {
	var v float64
	if json.Unmarshal(data, &v) == nil {
		*f = JsonFloat(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "+Inf":
		*f = JsonFloat(math.Inf(1))
	case "-Inf":
		*f = JsonFloat(math.Inf(-1))
	default:
		*f = JsonFloat(math.NaN())
	}
	return nil
}

// Entry is a single recorded calculation.
type Entry struct {
	Expression string    `json:"expression"`
	DataType   string    `json:"data_type"`
	Result     JsonFloat `json:"result"`
}

// Add appends one calculation to the log at path, creating the file if
// it does not exist and preserving entries already recorded.
func Add(path, expression string, dt value.DataType, result float64) error {
	entries, err := load(path)
	if err != nil {
		return err
	}
	entries = append(entries, Entry{
		Expression: expression,
		DataType:   dt.String(),
		Result:     JsonFloat(result),
	})
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Show prints the log at path, most recent entry first. A missing or
// empty file prints a placeholder rather than failing.
func Show(path string) error {
	entries, err := load(path)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no history data")
		return nil
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		fmt.Println("------------------------------------------------")
		fmt.Printf(" Expression : %s\n", e.Expression)
		fmt.Printf(" Type       : %s\n", e.DataType)
		fmt.Printf(" Result     : %g\n", e.Result)
		fmt.Print("------------------------------------------------\n\n")
	}
	return nil
}

func load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
