package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/wippyai/choice"
	"github.com/wippyai/choice/schema"
)

// shapes bundles the demo schema driven by this command: a unit variant,
// a single-value variant and a pair variant, tag-ordered alphabetically.
type shapes struct {
	S      *schema.Schema[string]
	Empty  choice.Unit[string]
	Weight choice.Case[string, int32]
	Point  choice.Case2[string, int32, int32]
}

func newShapes() shapes {
	b := schema.NewOrdered[string]("shapes")
	sh := shapes{
		Empty:  choice.UnitOf(b, "empty"),
		Weight: choice.CaseOf[int32](b, "weight"),
		Point:  choice.PairOf[int32, int32](b, "point"),
	}
	sh.S = b.MustBuild()
	return sh
}

func main() {
	interactive := flag.Bool("i", false, "Interactive mode with TUI")
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	sh := newShapes()

	lay := sh.S.Layout()
	fmt.Printf("Schema: %s (%d variants)\n", sh.S.Name(), sh.S.Len())
	fmt.Printf("Discriminant: %d byte(s), never=%d, moved=%d\n", lay.DiscSize, lay.Never, lay.Moved)
	fmt.Printf("Payload arena: %d byte(s) at offset %d, total footprint %d\n", lay.UnionSize, lay.PayloadOffset, lay.Size)
	fmt.Printf("Ordering: %s\n\n", sh.S.OrderingStrength())

	fmt.Println("Variants:")
	for slot := 0; slot < sh.S.Len(); slot++ {
		fmt.Printf("  %d: %s", slot, sh.S.TagAt(slot))
		if pt := sh.S.PayloadType(slot); pt != nil {
			fmt.Printf(" (%s)", pt)
		}
		fmt.Println()
	}

	a := sh.Weight.With(5)
	b := sh.Point.With(3, 4)
	fmt.Printf("\na = %s\nb = %s\n", a.String(), b.String())
	fmt.Printf("a < b: %v\n", a.Less(&b))

	c := b.Clone()
	sh.Point.Set(&b, 7, 1)
	fmt.Printf("after retag: b = %s, clone = %s\n", b.String(), c.String())

	moved := a.Move()
	fmt.Printf("after move: a = %s, moved = %s\n", a.String(), moved.String())
	return nil
}
