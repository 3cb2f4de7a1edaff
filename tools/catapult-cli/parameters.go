package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

const (
	// CfgNodeURL defines the REST gateway of the node.
	CfgNodeURL = "node.url"
	// CfgNodeTimeout defines the timeout of a single REST request.
	CfgNodeTimeout = "node.timeout"
	// CfgNodeCacheTTL defines how long node and network properties are cached.
	CfgNodeCacheTTL = "node.cacheTTL"

	// CfgAccountPrivateKey defines the hex encoded private key that signs transactions.
	CfgAccountPrivateKey = "account.privateKey"

	// CfgTransactionMaxFee defines the max fee of created transactions.
	CfgTransactionMaxFee = "transaction.maxFee"
	// CfgTransactionLifetime defines the time until a created transaction expires.
	CfgTransactionLifetime = "transaction.lifetime"

	// CfgTransferRecipient defines the recipient address of a transfer.
	CfgTransferRecipient = "transfer.recipient"
	// CfgTransferMosaic defines the hex id of the transferred mosaic. The network currency is used if empty.
	CfgTransferMosaic = "transfer.mosaic"
	// CfgTransferAmount defines the transferred amount in atomic units.
	CfgTransferAmount = "transfer.amount"
	// CfgTransferMessage defines the plain message attached to a transfer.
	CfgTransferMessage = "transfer.message"
	// CfgTransferCount defines how many transfers are announced.
	CfgTransferCount = "transfer.count"
	// CfgTransferWait defines whether the command waits for the confirmation of the transfer.
	CfgTransferWait = "transfer.wait"
	// CfgTransferYes skips the confirmation prompt.
	CfgTransferYes = "transfer.yes"

	// CfgWatchAddress defines the address whose channels are watched. The address of the account is used if empty.
	CfgWatchAddress = "watch.address"
	// CfgWatchBlocks defines whether new blocks are reported.
	CfgWatchBlocks = "watch.blocks"
	// CfgWatchReportInterval defines the interval of the confirmation rate report.
	CfgWatchReportInterval = "watch.reportInterval"

	// CfgDecodeGenerationHash defines the generation hash used to verify decoded transactions.
	CfgDecodeGenerationHash = "decode.generationHash"

	// CfgNTPServer defines the time server used to correct deadlines. Deadlines use the local clock if empty.
	CfgNTPServer = "ntp.server"
	// CfgAnnounceWorkers defines how many transactions are announced in parallel.
	CfgAnnounceWorkers = "announce.workers"
	// CfgLoggerLevel defines the log level.
	CfgLoggerLevel = "logger.level"
)

func defineParameters(flagSet *flag.FlagSet) {
	flagSet.String(CfgNodeURL, "http://localhost:3000", "the REST gateway of the node")
	flagSet.Duration(CfgNodeTimeout, 10*time.Second, "the timeout of a REST request")
	flagSet.Duration(CfgNodeCacheTTL, 5*time.Minute, "how long node and network properties are cached")

	flagSet.String(CfgAccountPrivateKey, "", "the hex encoded private key that signs transactions")

	flagSet.Uint64(CfgTransactionMaxFee, 0, "the max fee of created transactions")
	flagSet.Duration(CfgTransactionLifetime, 2*time.Hour, "the time until a created transaction expires")

	flagSet.String(CfgTransferRecipient, "", "the recipient address of the transfer")
	flagSet.String(CfgTransferMosaic, "", "the hex id of the transferred mosaic (network currency if empty)")
	flagSet.Uint64(CfgTransferAmount, 0, "the transferred amount in atomic units")
	flagSet.String(CfgTransferMessage, "", "the plain message attached to the transfer")
	flagSet.Int(CfgTransferCount, 1, "how many transfers are announced")
	flagSet.Bool(CfgTransferWait, false, "wait for the confirmation of the transfer")
	flagSet.BoolP(CfgTransferYes, "y", false, "announce without asking for confirmation")

	flagSet.String(CfgWatchAddress, "", "the address to watch (address of the account if empty)")
	flagSet.Bool(CfgWatchBlocks, false, "report new blocks")
	flagSet.Duration(CfgWatchReportInterval, time.Minute, "the interval of the confirmation rate report")

	flagSet.String(CfgDecodeGenerationHash, "", "the generation hash used to verify decoded transactions")

	flagSet.String(CfgNTPServer, "pool.ntp.org", "the time server used to correct deadlines")
	flagSet.Int(CfgAnnounceWorkers, 4, "how many transactions are announced in parallel")
	flagSet.String(CfgLoggerLevel, "info", "the log level")
}
