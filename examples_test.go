package smaz

import (
	"fmt"
)

func Example() {
	comp := Encode(nil, []byte("this is a test"))
	orig, err := Decode(nil, comp)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(orig))
	fmt.Println(len(comp) < len(orig))
	// Output:
	// this is a test
	// true
}

func ExampleNewDictionary() {
	d, err := NewDictionary([]string{"ERROR ", "WARN ", "INFO ", "disk ", "full"})
	if err != nil {
		panic(err)
	}
	comp := d.Encode(nil, []byte("ERROR disk full"))
	orig, err := d.Decode(nil, comp)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(orig))
	fmt.Println(len(comp), "of", len(orig), "bytes")
	// Output:
	// ERROR disk full
	// 3 of 15 bytes
}

func ExampleMultilingual() {
	d := Multilingual()
	comp := d.Encode(nil, []byte("la vida es un sueño"))
	orig, err := d.Decode(nil, comp)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(orig))
	// Output:
	// la vida es un sueño
}
