package main

import "github.com/Hajin-Jeon/KRGDB-parser/internal/cli"

func main() {
	cli.Execute()
}
