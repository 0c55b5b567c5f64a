/*

Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each package keeps a single configuration object stored under the
"_c:<package>" key. It is created from the "conf" section of the genesis
file and can later be read with Load and replaced with Save.

*/
package gconf
