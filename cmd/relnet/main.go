// SPDX-License-Identifier: MIT

// Command relnet runs statistics over stacks of distance, similarity and
// directed matrices stored as long-format CSV edge lists.
//
//	relnet simulate --kind similarity --nodes 20 --count 10 --noise 0.2 --out stack.csv
//	relnet ttest stack.csv --out-t t.csv --out-p p.csv
//	relnet threshold t.csv --upper 95% --binarize
//	relnet similarity ref.csv stack.csv --perm-type 2d --permutations 1000
//	relnet regress stack.csv --design design.csv --predictor group
//	relnet summary beta.csv --clusters labels.txt
//	relnet components t.csv --upper 95%
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
