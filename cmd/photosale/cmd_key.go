package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/photosale/crypto"
)

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a new ed25519 private key and store it in the key file.

An existing key file is never overwritten. Remove it manually to generate
a new key under the same path.
`)
		fl.PrintDefaults()
	}
	keyPathFl := flKey(fl)
	fl.Parse(args)

	fd, err := os.OpenFile(*keyPathFl, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	switch {
	case os.IsExist(err):
		return fmt.Errorf("key file %q already exists", *keyPathFl)
	case err != nil:
		return fmt.Errorf("cannot create key file: %s", err)
	}
	defer fd.Close()

	key := crypto.GenPrivKeyEd25519()
	if _, err := fd.Write(key.Bytes()); err != nil {
		return fmt.Errorf("cannot write key file: %s", err)
	}
	return fd.Close()
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the address of the key holder. The address is hex encoded unless a
bech32 prefix is given.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = flKey(fl)
		bech32Fl  = fl.String("bech32", "", "Bech32 prefix, for example tiov.")
	)
	fl.Parse(args)

	key, err := loadKey(*keyPathFl)
	if err != nil {
		return err
	}
	addr := key.PublicKey().Address()
	if *bech32Fl == "" {
		_, err = fmt.Fprintln(output, addr)
		return err
	}
	enc, err := addr.Bech32String(*bech32Fl)
	if err != nil {
		return fmt.Errorf("cannot encode address: %s", err)
	}
	_, err = fmt.Fprintln(output, "bech32:"+enc)
	return err
}
