package gecos_test

import (
	"fmt"

	"github.com/mixxplorer/gecos"
)

func ExampleGecos_GecosString() {
	name := gecos.MustSanitizedString("Test Name")
	g := gecos.Gecos{
		FullName: &name,
		Other: []gecos.SanitizedString{
			gecos.MustSanitizedString("Some info"),
			gecos.MustSanitizedString("More info"),
		},
	}
	fmt.Println(g.GecosString())
	// Output: Test Name,,,,Some info,More info
}

func ExampleParseGecos() {
	g, err := gecos.ParseGecos("Some Person,,,Home phone,Other")
	if err != nil {
		panic(err)
	}
	fmt.Println(g.FullName)
	fmt.Println(g.Room == nil)
	fmt.Println(g.HomePhone)
	fmt.Println(g.Other[0])
	// Output:
	// Some Person
	// true
	// Home phone
	// Other
}

func ExampleNewSanitizedString() {
	_, err := gecos.NewSanitizedString("shell=/bin/false")
	fmt.Println(err)
	// Output: invalid character '=' in gecos field (',', ':', '=', '\', '"' and newline are not allowed)
}
