package render_test

import (
	"fmt"
	"time"

	"github.com/rgoodwin/dps/internal/render"
)

func ExampleFormatUptime() {
	fmt.Println(render.FormatUptime(59 * time.Second))
	fmt.Println(render.FormatUptime(3661 * time.Second))
	fmt.Println(render.FormatUptime(12 * 24 * time.Hour))
	// Output:
	// 59s
	// 1h
	// 12d
}
