/*
Package cash keeps the balance of every address and moves value between
them. The sale ledger pays for photos and forwards proceeds through the
Controller of this package.

A wallet can be flagged to reject deposits. Any transfer that would credit
such a wallet fails with ErrRejected.
*/
package cash
