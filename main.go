package main

import (
	"fmt"
	"os"

	"jeffrey-jian/spendsplit/cmd/add"
	"jeffrey-jian/spendsplit/cmd/balances"
	"jeffrey-jian/spendsplit/cmd/duplicate"
	"jeffrey-jian/spendsplit/cmd/edit"
	"jeffrey-jian/spendsplit/cmd/export"
	"jeffrey-jian/spendsplit/cmd/list"
	"jeffrey-jian/spendsplit/cmd/remove"
	"jeffrey-jian/spendsplit/cmd/root"
)

func init() {
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(duplicate.Cmd)
	root.Cmd.AddCommand(balances.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
