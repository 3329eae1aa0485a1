package models

import (
	"time"

	tm "time"
)

type Shape interface {
	Area() float64
}

type Circle struct {
	_ struct{} `json5:"kind=circle"`
	R float64  `json5:"name=r,essential"`
}

func (c Circle) Area() float64 { return 3 * c.R * c.R }

type Job struct {
	Name    string        `json5:"name=name,essential,quote=single"`
	Every   time.Duration `json5:"name=every,int=hex"`
	Started tm.Time       `json5:"name=started,omitempty"`
	Tags    []string      `json5:"name=tags,array=single"`
	Shape   Shape         `json5:"name=shape"`
	Skip    string        `json5:"-"`
	Retries int
	secret  string
}

//json5:gen
type Plain struct {
	A int
	B *Circle
}

type Untagged struct {
	A int
}
