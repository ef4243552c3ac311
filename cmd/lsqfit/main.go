// Command lsqfit fits least-squares polynomials to point sets, evaluates
// them, plots them and generates synthetic data.
//
//	lsqfit fit                         # demo data, degrees 1 and 2
//	lsqfit fit -d pts.csv -n 3 --stats
//	lsqfit eval --coeff 1,2,3 0 0.5 1
//	lsqfit plot -o fit.png
//	lsqfit gen --coeff 1,-2,0.5 --n 50 --sigma 0.2 > pts.csv
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(newApp(os.Stderr, os.LookupEnv))
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lsqfit:", err)
		os.Exit(1)
	}
}
