package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/app"
	"github.com/iov-one/photosale/x/cash"
	"github.com/iov-one/photosale/x/sale"
)

// accountsFlag collects "<address>=<balance>" pairs.
type accountsFlag []cash.GenesisAccount

func (a *accountsFlag) String() string {
	chunks := make([]string, 0, len(*a))
	for _, acc := range *a {
		chunks = append(chunks, fmt.Sprintf("%s=%d", acc.Address, acc.Balance))
	}
	return strings.Join(chunks, ",")
}

func (a *accountsFlag) Set(raw string) error {
	chunks := strings.SplitN(raw, "=", 2)
	if len(chunks) != 2 {
		return fmt.Errorf("want <address>=<balance>, got %q", raw)
	}
	addr, err := photosale.ParseAddress(chunks[0])
	if err != nil {
		return err
	}
	balance, err := strconv.ParseUint(chunks[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid balance: %s", err)
	}
	*a = append(*a, cash.GenesisAccount{Address: addr, Balance: balance})
	return nil
}

func cmdGenesis(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out a genesis file that can be loaded with the init command.

Both the administrator and the treasury must be provided. Use -fund to give
an address an initial balance, this flag can be repeated.
`)
		fl.PrintDefaults()
	}
	var (
		chainIDFl  = fl.String("chain-id", "photosale-local", "Chain ID of the ledger.")
		adminFl    = flAddress(fl, "admin", "", "Address of the administrator.")
		treasuryFl = flAddress(fl, "treasury", "", "Address receiving the proceeds.")
		payoutFl   = fl.String("payout", sale.PayoutPull, "Payout mode, either pull or push.")
		pausedFl   = fl.Bool("paused", false, "Start with the sale paused.")
		accounts   accountsFlag
	)
	fl.Var(&accounts, "fund", "Initial balance given as <address>=<amount>.")
	fl.Parse(args)

	conf := sale.Configuration{
		Metadata: &photosale.Metadata{Schema: 1},
		Treasury: *treasuryFl,
		Payout:   *payoutFl,
	}
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %s", err)
	}
	if err := adminFl.Validate(); err != nil {
		return fmt.Errorf("invalid administrator: %s", err)
	}

	state := map[string]interface{}{
		"conf": map[string]interface{}{
			"sale": conf,
		},
		"sale": sale.GenesisState{
			Admin:  *adminFl,
			Paused: *pausedFl,
		},
		"cash": []cash.GenesisAccount(accounts),
	}
	rawState, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("cannot serialize state: %s", err)
	}
	var opts photosale.Options
	if err := json.Unmarshal(rawState, &opts); err != nil {
		return fmt.Errorf("cannot deserialize state: %s", err)
	}

	gen := app.Genesis{ChainID: *chainIDFl, AppState: opts}
	raw, err := json.MarshalIndent(gen, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize genesis: %s", err)
	}
	_, err = fmt.Fprintln(output, string(raw))
	return err
}

func cmdInit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Initialize a new ledger in the home directory using given genesis file.

A ledger can be initialized only once.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl    = flHome(fl)
		genesisFl = fl.String("genesis", "genesis.json", "Path to the genesis file.")
		debugFl   = flDebug(fl)
	)
	fl.Parse(args)

	gen, err := app.LoadGenesis(*genesisFl)
	if err != nil {
		return fmt.Errorf("cannot load genesis: %s", err)
	}
	n, err := openNode(*homeFl, *debugFl)
	if err != nil {
		return err
	}
	defer n.Close()

	initializer := photosale.ChainInitializers(
		cash.Initializer{},
		sale.Initializer{},
	)
	if err := n.ledger.InitChain(*gen, initializer); err != nil {
		return fmt.Errorf("cannot initialize: %s", err)
	}
	_, err = fmt.Fprintf(output, "ledger %s initialized in %s\n", gen.ChainID, *homeFl)
	return err
}
