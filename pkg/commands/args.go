package commands

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// ReorderArgs moves flags that follow a command's positional arguments in
// front of them, so "fare cit jer --adults 2" parses the same as
// "fare --adults 2 cit jer". Commands with subcommands are left alone.
func ReorderArgs(app *cli.App, args []string) []string {
	if len(args) < 2 {
		return args
	}

	globalValueFlags := valueFlagNames(app.Flags)

	commandIndex := 1
	for commandIndex < len(args) && strings.HasPrefix(args[commandIndex], "-") {
		if globalValueFlags[args[commandIndex]] {
			commandIndex++
		}
		commandIndex++
	}
	if commandIndex >= len(args) {
		return args
	}

	command := app.Command(args[commandIndex])
	if command == nil || len(command.Subcommands) > 0 {
		return args
	}

	valueFlags := valueFlagNames(command.Flags)

	var flags, positional []string
	rest := args[commandIndex+1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]

		if arg == "--" {
			positional = append(positional, rest[i:]...)
			break
		}

		if len(arg) > 1 && strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
			if valueFlags[arg] && i+1 < len(rest) {
				flags = append(flags, rest[i+1])
				i++
			}
			continue
		}

		positional = append(positional, arg)
	}

	reordered := append([]string{}, args[:commandIndex+1]...)
	reordered = append(reordered, flags...)

	return append(reordered, positional...)
}

// valueFlagNames lists the spellings of flags that consume the next argument.
func valueFlagNames(flags []cli.Flag) map[string]bool {
	names := map[string]bool{}

	for _, flag := range flags {
		if _, isBool := flag.(*cli.BoolFlag); isBool {
			continue
		}

		for _, name := range flag.Names() {
			names["-"+name] = true
			names["--"+name] = true
		}
	}

	return names
}
