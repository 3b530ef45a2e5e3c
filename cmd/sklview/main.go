// Command sklview inserts keys into a layered skip list and renders the
// resulting structure for inspection: the layers top to bottom, a per-key
// table with fingerprints and heights, and the insertion counters.
//
// Usage:
//
//	sklview -n 10              # integer keys 0..9
//	sklview 7 3 255            # integer keys from arguments
//	sklview -text ant bee cat  # string keys from arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/eric-minassian/ics46-project-2/skiplist"
)

func main() {
	count := flag.Int("n", 0, "insert integer keys 0..n-1 instead of reading keys from arguments")
	text := flag.Bool("text", false, "treat arguments as string keys")
	flag.Parse()

	switch {
	case *count > 0:
		x := skiplist.New[int, int]()
		for i := 0; i < *count; i++ {
			x.Insert(i, i)
		}
		report(x)
	case *text:
		x := skiplist.New[string, string]()
		for _, arg := range flag.Args() {
			x.Insert(arg, arg)
		}
		report(x)
	default:
		if flag.NArg() == 0 {
			log.Fatal("no keys: pass -n, integer arguments, or -text with words")
		}
		x := skiplist.New[int, int]()
		for _, arg := range flag.Args() {
			k, err := strconv.Atoi(arg)
			if err != nil {
				log.Fatalf("bad integer key %q: %v", arg, err)
			}
			x.Insert(k, k)
		}
		report(x)
	}
}

func report[K skiplist.Key, V any](x *skiplist.LayeredIndex[K, V]) {
	x.DumpLayers(os.Stdout)

	rows := make([][]string, 0, x.Size())
	for _, key := range x.AllKeysInOrder() {
		h, err := x.Height(key)
		if err != nil {
			log.Fatalf("height of %v: %v", key, err)
		}
		rows = append(rows, []string{
			fmt.Sprint(key),
			fmt.Sprintf("%08b", skiplist.Fingerprint(key)),
			strconv.Itoa(h),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Fingerprint", "Height"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	stats := x.Stats()
	fmt.Printf("keys=%d layers=%d promotions=%d growths=%d\n",
		x.Size(), x.NumLayers(), stats.Promotions, stats.LayerGrowths)
}
