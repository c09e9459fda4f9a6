package rmnk

import (
	"fmt"
	"strconv"
)

// ArrayIntFlags collects a repeatable integer flag into a list.
type ArrayIntFlags []int

func (i *ArrayIntFlags) String() string {
	return fmt.Sprintf("%v", *i)
}

func (i *ArrayIntFlags) Set(value string) error {
	val, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*i = append(*i, val)
	return nil
}

// ArrayFloatFlags collects a repeatable float flag into a list.
type ArrayFloatFlags []float64

func (i *ArrayFloatFlags) String() string {
	return fmt.Sprintf("%v", *i)
}

func (i *ArrayFloatFlags) Set(value string) error {
	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*i = append(*i, val)
	return nil
}
