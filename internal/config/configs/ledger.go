package configs

import (
	"strings"
	"time"
)

// Ledger configures the ledger gateway. The simulated driver keeps the
// whole ledger in memory and is meant for local runs; the stellar driver
// talks to a Horizon server.
type Ledger struct {
	Driver            string        `env:"DRIVER" envDefault:"simulated"`
	HorizonURL        string        `env:"HORIZON_URL" envDefault:"https://horizon-testnet.stellar.org"`
	NetworkPassphrase string        `env:"NETWORK_PASSPHRASE" envDefault:"Test SDF Network ; September 2015"`
	BaseFee           int64         `env:"BASE_FEE" envDefault:"100"`
	Timeout           time.Duration `env:"TIMEOUT" envDefault:"30s"`

	// FundNewAccounts lets the stellar driver ask friendbot to fund new
	// accounts. FunderSeed, when set, pays StartingBalance into them instead.
	FundNewAccounts bool   `env:"FUND_NEW_ACCOUNTS" envDefault:"true"`
	FunderSeed      string `env:"FUNDER_SEED"`

	// StartingBalance is the base-currency amount credited to every new
	// account by the simulated ledger or the funder account.
	StartingBalance int64 `env:"STARTING_BALANCE" envDefault:"1000"`
}

// IsStellar reports whether the stellar driver is selected.
func (c Ledger) IsStellar() bool {
	return strings.EqualFold(c.Driver, "stellar")
}
