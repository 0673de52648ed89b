package cmds

import (
	"fmt"
	"maps"
	"slices"
)

func (p *Executor) PrintUsage() {
	fmt.Println("commands:")
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if printed[command] {
			continue
		}
		printed[command] = true
		printCommand(name, command, 1)
	}
}

func printCommand(name string, command *Command, depth int) {
	for range depth {
		fmt.Print("  ")
	}
	fmt.Print(name)
	if command != nil {
		for _, alias := range command.Aliases {
			fmt.Printf(" | %s", alias)
		}
		if command.Description != "" {
			fmt.Printf("\n")
			for range depth + 1 {
				fmt.Print("  ")
			}
			fmt.Print(command.Description)
		}
	}
	fmt.Println()
	if command == nil {
		return
	}
	for _, subname := range slices.Sorted(maps.Keys(command.Subs)) {
		printCommand(subname, command.Subs[subname], depth+1)
	}
}
