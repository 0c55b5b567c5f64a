/*
Package sale implements the photo sale ledger.

An administrator mints photos into the custody of the ledger and sets
their price. Anyone can buy a photo held by custody by paying at least its
price. The photo then belongs to the buyer for good and its price is reset
to zero.

Proceeds are handled according to the payout mode set at genesis. In pull
mode (the default) payments accumulate in the custody wallet and the
administrator moves them to the treasury with a withdraw. In push mode the
payment goes to the treasury during the purchase and a treasury that
rejects deposits fails the purchase.

The genesis file must contain both parts of the setup:

  {
    "conf": {
      "sale": {
        "metadata": {"schema": 1},
        "treasury": "<hex address>",
        "payout": "pull"
      }
    },
    "sale": {"admin": "<hex address>"}
  }
*/
package sale
