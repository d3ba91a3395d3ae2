package system

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/storage"
)

type DebugCmd struct {
	StorePath DebugStorePathCmd `cmd:"" name:"store-path" help:"Show the store target and backup directory."`
	Dump      DebugDumpCmd      `cmd:"" help:"Dump the raw value stored under a key."`
	Keys      DebugKeysCmd      `cmd:"" help:"List stored keys."`
}

type DebugStorePathCmd struct{}

func (cmd *DebugStorePathCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	output := map[string]string{
		"path":   path,
		"kind":   string(storage.KindOf(path)),
		"backup": ctx.BackupManager().GetBackupDir(),
	}
	if storage.KindOf(path) == storage.KindPostgres {
		output["path"] = maskPassword(path)
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(jsonBytes))
	return nil
}

type DebugDumpCmd struct {
	Key string `arg:"" help:"Storage key, e.g. love-countdown-diary."`
}

func (cmd *DebugDumpCmd) Run(ctx *cli.Context) error {
	known := false
	for _, k := range constants.AllKeys {
		if k == cmd.Key {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown key %q", cmd.Key)
	}

	raw, ok, err := ctx.Store.Get(cmd.Key)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("null")
		return nil
	}

	// Pretty-print when the value parses; show it verbatim otherwise.
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		ctx.Println(raw)
		return nil
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(out))
	return nil
}

type DebugKeysCmd struct{}

func (cmd *DebugKeysCmd) Run(ctx *cli.Context) error {
	keys, err := ctx.Store.Keys()
	if err != nil {
		return err
	}
	for _, k := range keys {
		ctx.Println(k)
	}
	return nil
}
