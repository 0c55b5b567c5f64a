/*
Package x holds the helpers shared by the ledger extensions: signature
checks on top of an Authenticator and overflow safe amount arithmetic.

Each sub-package is a self contained extension that registers its handlers
with a Registry and its queries with a QueryRouter. Extensions talk to each
other only through their exported controllers, ie. the sale moves funds
with a cash.Controller.
*/
package x
