package mobscale

import (
	"sort"
	"strings"
)

const (
	// ReloadPermission gates the reload subcommand.
	ReloadPermission = "mobsizerandomizer.reload"

	bannerMessage   = "Mob Size Randomizer"
	reloadedMessage = "Mob Size Randomizer Configuration Reloaded"
	reloadFailedMsg = "Mob Size Randomizer Configuration Reload Failed: "
)

// subcommand is one entry of the command tree.
type subcommand struct {
	name       string
	permission string
	run        func(r *Randomizer, sender CommandSender)
}

var subcommands = []subcommand{
	{
		name:       "reload",
		permission: ReloadPermission,
		run: func(r *Randomizer, sender CommandSender) {
			if err := r.Reload(); err != nil {
				sender.SendMessage(reloadFailedMsg + err.Error())
				return
			}
			sender.SendMessage(reloadedMessage)
		},
	},
}

// Execute runs the mobsizerandomizer command. With no arguments it replies
// with the banner. It returns false when the subcommand is unknown or the
// sender lacks permission, so the host can print usage.
func (r *Randomizer) Execute(sender CommandSender, args []string) bool {
	if len(args) == 0 {
		sender.SendMessage(bannerMessage)
		return true
	}
	for _, sc := range subcommands {
		if !strings.EqualFold(args[0], sc.name) || !sender.HasPermission(sc.permission) {
			continue
		}
		sc.run(r, sender)
		return true
	}
	return false
}

// TabComplete returns the sorted subcommands the sender may run that start
// with the partial first argument.
func (r *Randomizer) TabComplete(sender CommandSender, args []string) []string {
	completions := []string{}
	if len(args) != 1 {
		return completions
	}
	prefix := strings.ToLower(args[0])
	for _, sc := range subcommands {
		if sender.HasPermission(sc.permission) && strings.HasPrefix(sc.name, prefix) {
			completions = append(completions, sc.name)
		}
	}
	sort.Strings(completions)
	return completions
}
