package main

import "l10n-verify/internal/cli"

func main() {
	cli.Execute()
}
