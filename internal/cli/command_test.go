package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafCommandBuild(t *testing.T) {
	cmd := LeafCommand{
		Use:   "mark <date>",
		Short: "Mark a day",
		Long:  "Mark a day as sick or vacation.",
		Args:  cobra.ExactArgs(1),
		BoolFlags: []BoolFlag{
			{Name: "yes", Usage: "skip confirmation prompts", Default: false},
			{Name: "watch", Usage: "keep refreshing", Default: true},
		},
		StrFlags: []StringFlag{
			{Name: "output", Shorthand: "o", Usage: "output file", Default: "out.json"},
		},
		RunE: func(cmd *cobra.Command, args []string) error { return nil },
	}.Build()

	assert.Equal(t, "mark <date>", cmd.Use)
	assert.Equal(t, "Mark a day", cmd.Short)
	assert.Equal(t, "Mark a day as sick or vacation.", cmd.Long)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	yes := cmd.Flags().Lookup("yes")
	require.NotNil(t, yes)
	assert.Equal(t, "false", yes.DefValue)

	watch := cmd.Flags().Lookup("watch")
	require.NotNil(t, watch)
	assert.Equal(t, "true", watch.DefValue)

	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "out.json", output.DefValue)
	assert.Equal(t, "o", output.Shorthand)
}

func TestLeafCommandBuildNoFlags(t *testing.T) {
	cmd := LeafCommand{
		Use:   "stop",
		Short: "Stop tracking",
		RunE:  func(cmd *cobra.Command, args []string) error { return nil },
	}.Build()

	assert.Equal(t, "stop", cmd.Use)
	assert.False(t, cmd.HasFlags())
}

func TestGroupCommandBuild(t *testing.T) {
	sub1 := &cobra.Command{Use: "get"}
	sub2 := &cobra.Command{Use: "set"}

	cmd := GroupCommand{
		Use:         "settings",
		Short:       "Manage settings",
		Subcommands: []*cobra.Command{sub1, sub2},
	}.Build()

	assert.Equal(t, "settings", cmd.Use)
	assert.Equal(t, "Manage settings", cmd.Short)
	assert.Nil(t, cmd.RunE)

	names := make([]string, len(cmd.Commands()))
	for i, c := range cmd.Commands() {
		names[i] = c.Name()
	}
	assert.Contains(t, names, "get")
	assert.Contains(t, names, "set")
}

func TestGroupCommandBuildNoSubcommands(t *testing.T) {
	cmd := GroupCommand{
		Use:   "empty",
		Short: "An empty group",
	}.Build()

	assert.Equal(t, "empty", cmd.Use)
	assert.Empty(t, cmd.Commands())
}
