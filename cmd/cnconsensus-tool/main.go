package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"gitlab.com/jaxnet/cryptonote-consensus/checkpoint"
	"gitlab.com/jaxnet/cryptonote-consensus/config"
	"gitlab.com/jaxnet/cryptonote-consensus/mms"
	"gitlab.com/jaxnet/cryptonote-consensus/mms/transport"
)

// App carries the loaded config and the checkpoint registry that
// subcommands operate on. It is populated once in Before and read by every
// command.
type App struct {
	cfg      *config.Config
	registry *checkpoint.Registry
}

func main() {
	app := &App{}
	cliApp := &cli.App{
		Name:     "cnconsensus-tool",
		Usage:    "operator utility for checkpoints and the multisig message store",
		Flags:    app.initFlags(),
		Before:   app.initCfg,
		Commands: app.getCommands(),
	}

	if err := cliApp.Run(os.Args); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func (app *App) initFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to the YAML config file",
			Value:   "cnconsensus.yaml",
		},
	}
}

func (app *App) initCfg(c *cli.Context) error {
	cfg, _, err := config.Load([]string{"-c", c.String("config")})
	if err != nil {
		return cli.Exit(errors.Wrap(err, "loading config"), 1)
	}
	app.cfg = cfg

	network, err := cfg.NetworkValue()
	if err != nil {
		return cli.Exit(err, 1)
	}

	app.registry = checkpoint.New()
	if err := app.registry.InitDefaults(network); err != nil {
		return cli.Exit(errors.Wrap(err, "loading default checkpoints"), 1)
	}
	if cfg.CheckpointJSONPath != "" {
		if err := app.registry.LoadFromJSON(cfg.CheckpointJSONPath); err != nil {
			return cli.Exit(errors.Wrap(err, "loading checkpoint file"), 1)
		}
	}
	return nil
}

func (app *App) getCommands() cli.Commands {
	return []*cli.Command{
		{
			Name:  "checkpoint",
			Usage: "inspect and extend the checkpoint registry",
			Subcommands: cli.Commands{
				{
					Name:   "add",
					Usage:  "add a height/hash checkpoint and persist it to the config's checkpoint file",
					Action: app.checkpointAddCmd,
					Flags: []cli.Flag{
						&cli.Uint64Flag{Name: "height", Required: true},
						&cli.StringFlag{Name: "hash", Required: true, Usage: "64-character hex block hash"},
					},
				},
				{
					Name:   "max-height",
					Usage:  "print the highest checkpointed height",
					Action: app.checkpointMaxHeightCmd,
				},
				{
					Name:   "sync-dns",
					Usage:  "merge checkpoints found in the network's DNS TXT records",
					Action: app.checkpointSyncDNSCmd,
				},
			},
		},
		{
			Name:  "mms",
			Usage: "operate a multisig message store",
			Subcommands: cli.Commands{
				{
					Name:   "init",
					Usage:  "create a fresh message store for an M-of-N coalition",
					Action: app.mmsInitCmd,
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "label", Value: "self"},
						&cli.StringFlag{Name: "transport", Required: true, Usage: "own transport address, e.g. BM-xxxx or a file-debug directory"},
						&cli.UintFlag{Name: "coalition-size", Required: true},
						&cli.UintFlag{Name: "threshold", Required: true},
						&cli.StringFlag{Name: "view-secret", Required: true, Usage: "64-character hex view secret key"},
						&cli.StringFlag{Name: "spend-public", Required: true, Usage: "64-character hex spend public key"},
					},
				},
				{
					Name:   "poll",
					Usage:  "check the transport for new messages and print the planner's next recommended actions",
					Action: app.mmsPollCmd,
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "view-secret", Required: true},
						&cli.StringFlag{Name: "spend-public", Required: true},
						&cli.BoolFlag{Name: "force-sync"},
					},
				},
			},
		},
	}
}

func (app *App) checkpointAddCmd(c *cli.Context) error {
	height := c.Uint64("height")
	hexHash := c.String("hash")

	if err := app.registry.AddHex(height, hexHash); err != nil {
		return cli.Exit(err, 1)
	}

	if app.cfg.CheckpointJSONPath == "" {
		fmt.Printf("added checkpoint %d but no checkpoint_json_path is configured, not persisted\n", height)
		return nil
	}
	if err := app.registry.WriteJSON(app.cfg.CheckpointJSONPath); err != nil {
		return cli.Exit(errors.Wrap(err, "writing checkpoint file"), 1)
	}
	fmt.Printf("added checkpoint %d and wrote %s\n", height, app.cfg.CheckpointJSONPath)
	return nil
}

func (app *App) checkpointMaxHeightCmd(*cli.Context) error {
	fmt.Println(app.registry.MaxHeight())
	return nil
}

func (app *App) checkpointSyncDNSCmd(c *cli.Context) error {
	network, err := app.cfg.NetworkValue()
	if err != nil {
		return cli.Exit(err, 1)
	}
	if err := app.registry.LoadFromDNS(c.Context, checkpoint.SystemResolver{}, network); err != nil {
		return cli.Exit(errors.Wrap(err, "loading checkpoints from dns"), 1)
	}
	fmt.Printf("max height after dns sync: %d\n", app.registry.MaxHeight())
	return nil
}

func parseHexKey32(s string) ([32]byte, error) {
	var out [32]byte
	decoded, err := parseHex(s)
	if err != nil {
		return out, err
	}
	if len(decoded) != 32 {
		return out, errors.Errorf("expected 32 bytes, got %d", len(decoded))
	}
	copy(out[:], decoded)
	return out, nil
}

func (app *App) mmsInitCmd(c *cli.Context) error {
	viewSecret, err := parseHexKey32(c.String("view-secret"))
	if err != nil {
		return cli.Exit(errors.Wrap(err, "parsing view-secret"), 1)
	}
	spendPublic, err := parseHexKey32(c.String("spend-public"))
	if err != nil {
		return cli.Exit(errors.Wrap(err, "parsing spend-public"), 1)
	}

	state := mms.WalletState{
		Address:       mms.DeriveAccountPublicKey(mms.PublicKey(spendPublic), mms.SecretKey(viewSecret)),
		ViewSecretKey: mms.SecretKey(viewSecret),
		MMSFile:       app.cfg.MMSFile,
	}

	opts := transport.BitmessageOptions{Address: app.cfg.BitmessageAddress, Login: app.cfg.BitmessageLogin}
	store := mms.NewStore(transport.Resolve(c.String("transport"), opts))
	store.SetTransportResolver(func(address string) mms.Transport { return transport.Resolve(address, opts) })

	if err := store.Init(state, c.String("label"), c.String("transport"), uint32(c.Uint("coalition-size")), uint32(c.Uint("threshold"))); err != nil {
		return cli.Exit(errors.Wrap(err, "initializing message store"), 1)
	}
	if err := store.WriteToFile(state, app.cfg.MMSFile); err != nil {
		return cli.Exit(errors.Wrap(err, "writing message store"), 1)
	}
	fmt.Printf("initialized message store at %s\n", app.cfg.MMSFile)
	return nil
}

func (app *App) mmsPollCmd(c *cli.Context) error {
	viewSecret, err := parseHexKey32(c.String("view-secret"))
	if err != nil {
		return cli.Exit(errors.Wrap(err, "parsing view-secret"), 1)
	}
	spendPublic, err := parseHexKey32(c.String("spend-public"))
	if err != nil {
		return cli.Exit(errors.Wrap(err, "parsing spend-public"), 1)
	}

	opts := transport.BitmessageOptions{Address: app.cfg.BitmessageAddress, Login: app.cfg.BitmessageLogin}
	store := mms.NewStore(transport.Resolve("", opts))
	store.SetTransportResolver(func(address string) mms.Transport { return transport.Resolve(address, opts) })

	state := mms.WalletState{
		Address:       mms.DeriveAccountPublicKey(mms.PublicKey(spendPublic), mms.SecretKey(viewSecret)),
		ViewSecretKey: mms.SecretKey(viewSecret),
		MMSFile:       app.cfg.MMSFile,
	}

	if err := store.ReadFromFile(state, app.cfg.MMSFile); err != nil {
		return cli.Exit(errors.Wrap(err, "reading message store"), 1)
	}

	received, err := store.CheckForMessages(state)
	if err != nil {
		return cli.Exit(errors.Wrap(err, "checking for messages"), 1)
	}
	fmt.Printf("received %d new message(s)\n", len(received))

	plans, reason, err := store.GetProcessableMessages(state, c.Bool("force-sync"))
	if err != nil {
		return cli.Exit(errors.Wrap(err, "planning next actions"), 1)
	}
	if len(plans) == 0 {
		fmt.Printf("nothing to do: %s\n", reason)
	}
	for _, plan := range plans {
		fmt.Printf("action=%v messages=%v receiving_member=%d\n", plan.Kind, plan.MessageIDs, plan.ReceivingMemberIndex)
	}

	if err := store.WriteToFile(state, app.cfg.MMSFile); err != nil {
		return cli.Exit(errors.Wrap(err, "writing message store"), 1)
	}
	return nil
}
