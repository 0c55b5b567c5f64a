/*
Package app contains the pieces needed to run the ledger: a Router
dispatching messages to handlers, a chain of decorators wrapped around it
and the Ledger that executes each call as a single transaction over a
commit store.

  handler := app.ChainDecorators(
    utils.NewLogging(),
    utils.NewRecovery(),
    utils.NewActionTagger(),
  ).WithHandler(router)
  ledger, err := app.NewLedger(store, handler, queries, logger)
*/
package app
