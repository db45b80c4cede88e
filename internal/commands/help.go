package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"caseshop/internal/app"
	"caseshop/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "caseshop help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, a *app.App, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  caseshop                                         Show the home screen
  caseshop home [common flags]
  caseshop show [common flags] <page>              home, products, dashboard or profile
  caseshop products [common flags] [--category <c>] [--search <text>] [--sort name|price|rating]
  caseshop categories [common flags]
  caseshop add [common flags] [--qty <n>] <product>
  caseshop cart [common flags]
  caseshop qty [common flags] <product> <n>
  caseshop remove [common flags] <product>
  caseshop clear [common flags]
  caseshop checkout [common flags]
  caseshop wishlist [common flags]
  caseshop wish [common flags] <product>
  caseshop unwish [common flags] <product>
  caseshop dashboard [common flags]
  caseshop tasks [common flags] [--status <s>] [--category <c>]
  caseshop stats [common flags]
  caseshop new [common flags] [--desc <d>] [--priority <p>] [--category <c>] [--status <s>] <title...>
  caseshop edit [common flags] [--title <t>] [--desc <d>] [--priority <p>] [--category <c>] [--status <s>] <ref>
  caseshop done [common flags] <ref>
  caseshop rm [common flags] <ref>
  caseshop profile [common flags]
  caseshop theme [common flags] [dark|light|toggle]
  caseshop login [common flags] --email <email> --password <password>
  caseshop register [common flags] --name <name> --email <email> --password <password>
  caseshop logout [common flags]
  caseshop help
  caseshop version

Common flags:
  --config <dir>    Override config directory
  --api-url <url>   Override the storefront API base URL
  --quiet           Suppress informational output
  --debug           Print debug logs to stderr
`
