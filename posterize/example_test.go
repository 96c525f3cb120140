package posterize_test

import (
	"fmt"
	"image"
	"image/color"

	"github.com/kropptrevor/go-posterize/posterize"
)

func ExampleQuantize() {
	fmt.Println(posterize.Quantize(128, 1, 255))
	fmt.Println(posterize.Quantize(100, 3, 255))
	// Output:
	// 255
	// 85
}

func ExampleRGBA() {
	m := image.NewRGBA(image.Rect(0, 0, 1, 1))
	m.SetRGBA(0, 0, color.RGBA{R: 128, G: 40, B: 200, A: 255})

	out, err := posterize.RGBA(m, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out.RGBAAt(0, 0))
	// Output:
	// {255 0 255 255}
}

func ExampleRGBA_minimumLevel() {
	_, err := posterize.RGBA(image.NewRGBA(image.Rect(0, 0, 1, 1)), 1)
	fmt.Println(err)
	// Output:
	// expected level higher than or equal to 2
}
