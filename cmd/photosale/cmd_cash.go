package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/x/cash"
)

func cmdSend(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Move funds from the key owner wallet to another address.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl   = flHome(fl)
		keyFl    = flKey(fl)
		debugFl  = flDebug(fl)
		dstFl    = flAddress(fl, "dst", "", "Destination address.")
		amountFl = fl.Uint64("amount", 0, "Amount to send.")
		memoFl   = fl.String("memo", "", "Optional text attached to the transfer.")
	)
	fl.Parse(args)

	key, err := loadKey(*keyFl)
	if err != nil {
		return err
	}
	msg := &cash.SendMsg{
		Metadata:    &photosale.Metadata{Schema: 1},
		Source:      key.PublicKey().Address(),
		Destination: *dstFl,
		Amount:      *amountFl,
		Memo:        *memoFl,
	}
	res, err := deliver(*homeFl, *keyFl, *debugFl, msg)
	if err != nil {
		return err
	}
	return printResult(output, res)
}

func cmdBalance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the balance of an address. When no address is given, the balance of
the key owner is printed.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl = flHome(fl)
		keyFl  = flKey(fl)
		addrFl = flAddress(fl, "addr", "", "Address to check.")
	)
	fl.Parse(args)

	addr := *addrFl
	if len(addr) == 0 {
		key, err := loadKey(*keyFl)
		if err != nil {
			return err
		}
		addr = key.PublicKey().Address()
	}

	models, err := query(*homeFl, "/wallets", addr)
	if err != nil {
		return err
	}
	var balance uint64
	if len(models) != 0 {
		var w cash.Wallet
		if err := w.Unmarshal(models[0].Value); err != nil {
			return fmt.Errorf("cannot decode wallet: %s", err)
		}
		balance = w.Balance
	}
	_, err = fmt.Fprintln(output, balance)
	return err
}
