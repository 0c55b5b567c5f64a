package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/x/sale"
)

// query runs a query against the ledger stored in the home directory.
func query(home, path string, data []byte) ([]photosale.Model, error) {
	n, err := openNode(home, false)
	if err != nil {
		return nil, err
	}
	defer n.Close()
	return n.ledger.Query(path, data)
}

// photoFlags parses the flags of a command that reads a single photo.
func photoFlags(args []string, usage string) (home string, id uint64) {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		fl.PrintDefaults()
	}
	var (
		homeFl = flHome(fl)
		idFl   = fl.Uint64("id", 0, "ID of the photo.")
	)
	fl.Parse(args)
	return *homeFl, *idFl
}

func cmdPrice(input io.Reader, output io.Writer, args []string) error {
	home, id := photoFlags(args, `
Print the price of a photo. Photos that were never priced cost 0.
`)
	return view(home, func(n *node, db photosale.ReadOnlyKVStore) error {
		price, err := n.sale.PriceOf(db, id)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(output, price)
		return err
	})
}

func cmdOwner(input io.Reader, output io.Writer, args []string) error {
	home, id := photoFlags(args, `
Print the address holding a photo.
`)
	return view(home, func(n *node, db photosale.ReadOnlyKVStore) error {
		owner, err := n.sale.OwnerOf(db, id)
		if err != nil {
			return err
		}
		if owner.Equals(sale.CustodyAddress) {
			_, err = fmt.Fprintf(output, "%s (custody)\n", owner)
			return err
		}
		_, err = fmt.Fprintln(output, owner)
		return err
	})
}

func cmdMetadata(input io.Reader, output io.Writer, args []string) error {
	home, id := photoFlags(args, `
Print the self describing data URI of a photo.
`)
	return view(home, func(n *node, db photosale.ReadOnlyKVStore) error {
		uri, err := n.sale.MetadataOf(db, id)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(output, uri)
		return err
	})
}

func cmdInventory(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the state of the sale: administrator, treasury, payout mode, pause
flag, number of photos held by custody and proceeds waiting for a withdraw.
`)
		fl.PrintDefaults()
	}
	homeFl := flHome(fl)
	fl.Parse(args)

	return view(*homeFl, func(n *node, db photosale.ReadOnlyKVStore) error {
		admin, err := n.sale.Admin(db)
		if err != nil {
			return err
		}
		conf, err := n.sale.Configuration(db)
		if err != nil {
			return err
		}
		paused, err := n.sale.IsPaused(db)
		if err != nil {
			return err
		}
		count, err := n.sale.InventoryCount(db)
		if err != nil {
			return err
		}
		pending, err := n.sale.PendingProceeds(db)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(output, "admin\t%s\ntreasury\t%s\npayout\t%s\npaused\t%t\ninventory\t%d\nproceeds\t%d\n",
			admin, conf.Treasury, conf.PayoutMode(), paused, count, pending)
		return err
	})
}

// listing is a single photo available for purchase.
type listing struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       uint64 `json:"price"`
}

func cmdList(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print all photos held by custody as a JSON list ordered by id.
`)
		fl.PrintDefaults()
	}
	homeFl := flHome(fl)
	fl.Parse(args)

	return view(*homeFl, func(n *node, db photosale.ReadOnlyKVStore) error {
		ids, meta, prices, err := n.sale.ListInventory(db)
		if err != nil {
			return err
		}
		list := make([]listing, len(ids))
		for i, id := range ids {
			list[i] = listing{
				ID:          id,
				Name:        meta[i].Name,
				Description: meta[i].Description,
				Image:       meta[i].Image,
				Price:       prices[i],
			}
		}
		raw, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("cannot serialize: %s", err)
		}
		_, err = fmt.Fprintln(output, string(raw))
		return err
	})
}
