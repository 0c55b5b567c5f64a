package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/orm"
	"github.com/iov-one/photosale/x/sale"
)

// printResult writes the log and the events of a delivered call.
func printResult(output io.Writer, res *photosale.DeliverResult) error {
	if res.Log != "" {
		if _, err := fmt.Fprintln(output, res.Log); err != nil {
			return err
		}
	}
	for _, e := range res.Events {
		if _, err := fmt.Fprintf(output, "%s\t%+v\n", e.EventName(), e); err != nil {
			return err
		}
	}
	return nil
}

func cmdMint(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a new photo. The photo is held by custody and can be purchased for the
given price. Only the administrator can mint. The new photo id is printed.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl  = flHome(fl)
		keyFl   = flKey(fl)
		debugFl = flDebug(fl)
		nameFl  = fl.String("name", "", "Name of the photo.")
		descFl  = fl.String("description", "", "Description of the photo.")
		imageFl = fl.String("image", "", "Location of the image.")
		priceFl = fl.Uint64("price", 0, "Price of the photo.")
	)
	fl.Parse(args)

	msg := &sale.MintMsg{
		Metadata:    &photosale.Metadata{Schema: 1},
		Name:        *nameFl,
		Description: *descFl,
		Image:       *imageFl,
		Price:       *priceFl,
	}
	res, err := deliver(*homeFl, *keyFl, *debugFl, msg)
	if err != nil {
		return err
	}
	if err := orm.ValidateSequence(res.Data); err != nil {
		return fmt.Errorf("invalid photo id: %s", err)
	}
	_, err = fmt.Fprintln(output, orm.DecodeSequence(res.Data))
	return err
}

func cmdPause(input io.Reader, output io.Writer, args []string) error {
	return setPaused(output, args, true)
}

func cmdUnpause(input io.Reader, output io.Writer, args []string) error {
	return setPaused(output, args, false)
}

func setPaused(output io.Writer, args []string, paused bool) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Pause or resume the sale. Purchases are rejected while the sale is paused.
Only the administrator can change it.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl  = flHome(fl)
		keyFl   = flKey(fl)
		debugFl = flDebug(fl)
	)
	fl.Parse(args)

	msg := &sale.SetPausedMsg{
		Metadata: &photosale.Metadata{Schema: 1},
		Paused:   paused,
	}
	res, err := deliver(*homeFl, *keyFl, *debugFl, msg)
	if err != nil {
		return err
	}
	return printResult(output, res)
}

func cmdChangePrice(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Set the price of a photo. Only the administrator can change prices.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl  = flHome(fl)
		keyFl   = flKey(fl)
		debugFl = flDebug(fl)
		idFl    = fl.Uint64("id", 0, "ID of the photo.")
		priceFl = fl.Uint64("price", 0, "New price.")
	)
	fl.Parse(args)

	msg := &sale.ChangePriceMsg{
		Metadata: &photosale.Metadata{Schema: 1},
		PhotoID:  *idFl,
		Price:    *priceFl,
	}
	res, err := deliver(*homeFl, *keyFl, *debugFl, msg)
	if err != nil {
		return err
	}
	return printResult(output, res)
}

func cmdPurchase(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Buy a photo held by custody. The whole amount is paid, even if it is above
the price. The photo is transferred to the key owner.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl   = flHome(fl)
		keyFl    = flKey(fl)
		debugFl  = flDebug(fl)
		idFl     = fl.Uint64("id", 0, "ID of the photo.")
		amountFl = fl.Uint64("amount", 0, "Amount paid.")
	)
	fl.Parse(args)

	msg := &sale.PurchaseMsg{
		Metadata: &photosale.Metadata{Schema: 1},
		PhotoID:  *idFl,
		Amount:   *amountFl,
	}
	res, err := deliver(*homeFl, *keyFl, *debugFl, msg)
	if err != nil {
		return err
	}
	return printResult(output, res)
}

func cmdWithdraw(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Move all proceeds collected by custody to the treasury. Only the
administrator can withdraw.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl  = flHome(fl)
		keyFl   = flKey(fl)
		debugFl = flDebug(fl)
	)
	fl.Parse(args)

	msg := &sale.WithdrawMsg{
		Metadata: &photosale.Metadata{Schema: 1},
	}
	res, err := deliver(*homeFl, *keyFl, *debugFl, msg)
	if err != nil {
		return err
	}
	return printResult(output, res)
}

func cmdTransferAdmin(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Hand the administrator role over to another address.
`)
		fl.PrintDefaults()
	}
	var (
		homeFl  = flHome(fl)
		keyFl   = flKey(fl)
		debugFl = flDebug(fl)
		adminFl = flAddress(fl, "admin", "", "Address of the new administrator.")
	)
	fl.Parse(args)

	msg := &sale.TransferAdminMsg{
		Metadata: &photosale.Metadata{Schema: 1},
		NewAdmin: *adminFl,
	}
	res, err := deliver(*homeFl, *keyFl, *debugFl, msg)
	if err != nil {
		return err
	}
	return printResult(output, res)
}
