package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/photosale"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *photosale.Address {
	var a photosale.Address
	if defaultVal != "" {
		var err error
		a, err = photosale.ParseAddress(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q photosale.Address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&a, name, usage)
	return &a
}

// flHome registers the flag pointing to the directory holding the ledger
// database.
func flHome(fl *flag.FlagSet) *string {
	return fl.String("home", env("PHOTOSALE_HOME", os.Getenv("HOME")+"/.photosale"),
		"Directory the ledger state is stored in. You can use PHOTOSALE_HOME environment variable to set it.")
}

// flKey registers the flag pointing to the private key file used to sign
// calls.
func flKey(fl *flag.FlagSet) *string {
	return fl.String("key", env("PHOTOSALE_PRIV_KEY", os.Getenv("HOME")+"/.photosale.priv.key"),
		"Path to the private key file that the call should be signed with. You can use PHOTOSALE_PRIV_KEY environment variable to set it.")
}

// flDebug registers the flag enabling debug logs.
func flDebug(fl *flag.FlagSet) *bool {
	return fl.Bool("debug", false, "Write debug logs to stderr.")
}

// env returns the value of the environment variable if it is set, even to
// an empty string, and the fallback otherwise.
func env(name, fallback string) string {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	return v
}
