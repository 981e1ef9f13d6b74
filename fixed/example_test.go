package fixed_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/sevseg/fixed"
)

// ExampleFour renders a short input, left-padded with zeros.
func ExampleFour() {
	out, err := fixed.Four("80")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(out)
	// Output:
	// ┏━━━┓ ┏━━━┓ ┏━━━┓ ┏━━━┓
	// ┃   ┃ ┃   ┃ ┃   ┃ ┃   ┃
	// ┃   ┃ ┃   ┃ ┣━━━┫ ┃   ┃
	// ┃   ┃ ┃   ┃ ┃   ┃ ┃   ┃
	// ┗━━━┛ ┗━━━┛ ┗━━━┛ ┗━━━┛
}

// ExampleFourSeq consumes the lazy fragment sequence.
func ExampleFourSeq() {
	seq, err := fixed.FourSeq("8023")
	if err != nil {
		fmt.Println(err)
		return
	}
	var sb strings.Builder
	for frag := range seq {
		sb.WriteString(frag)
	}
	fmt.Print(sb.String())
	// Output:
	// ┏━━━┓ ┏━━━┓ ╺━━━┓ ╺━━━┓
	// ┃   ┃ ┃   ┃     ┃     ┃
	// ┣━━━┫ ┃   ┃ ┏━━━┛ ╺━━━┫
	// ┃   ┃ ┃   ┃ ┃         ┃
	// ┗━━━┛ ┗━━━┛ ┗━━━╸ ╺━━━┛
}

// ExampleFormat shows how rejected input is reported.
func ExampleFormat() {
	_, err := fixed.Format(4, "01245")
	fmt.Println(errors.Is(err, fixed.ErrLength))
	// Output:
	// true
}
