package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"railsim/internal/domain"
	"railsim/internal/infrastructure/storage"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "show":
		if len(os.Args) < 3 {
			fmt.Println("Usage: journaldump show <file.rscj>")
			os.Exit(2)
		}
		j, err := storage.LoadJournal(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid journal: %v\n", err)
			os.Exit(1)
		}
		printJournal(os.Stdout, j)
	case "survivor":
		if len(os.Args) < 3 {
			fmt.Println("Usage: journaldump survivor <file.rscj>")
			os.Exit(2)
		}
		j, err := storage.LoadJournal(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid journal: %v\n", err)
			os.Exit(1)
		}
		if j.Survivor == nil {
			fmt.Fprintln(os.Stderr, "No survivor recorded")
			os.Exit(1)
		}
		fmt.Println(j.Survivor)
	default:
		printHelp()
	}
}

func printJournal(w io.Writer, j *domain.Journal) {
	fmt.Fprintf(w, "run       %s\n", j.RunID)
	fmt.Fprintf(w, "started   %s\n", time.Unix(j.Timestamp, 0).UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "grid      %dx%d\n", j.Cols, j.Rows)
	fmt.Fprintf(w, "carts     %d\n", j.InitialCarts)
	fmt.Fprintf(w, "ticks     %d\n", j.Ticks)
	if j.Survivor != nil {
		fmt.Fprintf(w, "survivor  %s\n", j.Survivor)
	}
	for _, c := range j.Collisions {
		fmt.Fprintf(w, "tick %6d  %-9s %v -> %v\n", c.Tick, c.Pos, c.Moving, c.Struck)
	}
}

func printHelp() {
	fmt.Println(`journaldump - просмотр журналов столкновений railsim
Commands:
  show <file>      - заголовок и все столкновения
  survivor <file>  - позиция последней вагонетки (x,y)`)
}
