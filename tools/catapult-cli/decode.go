package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/iotaledger/catapult-client/packages/model"
	"github.com/iotaledger/catapult-client/packages/signer"
	"github.com/iotaledger/catapult-client/packages/transaction"
)

func execDecodeCommand(config *viper.Viper, args []string) error {
	if len(args) != 1 {
		return errors.New("decode expects exactly one hex encoded payload")
	}

	return decodeTransaction(os.Stdout, args[0], config.GetString(CfgDecodeGenerationHash))
}

// decodeTransaction writes the decoded form of a hex encoded transaction to w. If a generation hash is given, the
// hash of the transaction is written and its signatures are verified.
func decodeTransaction(w io.Writer, payload string, generationHashHex string) error {
	bytes, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(payload), "0x"))
	if err != nil {
		return errors.Wrap(err, "payload is not hex encoded")
	}

	tx, consumedBytes, err := transaction.TransactionFromBytes(bytes)
	if err != nil {
		return errors.Wrap(err, "failed to decode transaction")
	}
	if consumedBytes != len(bytes) {
		return errors.Errorf("payload has %d trailing bytes", len(bytes)-consumedBytes)
	}

	_, _ = fmt.Fprintln(w, tx)

	if generationHashHex == "" {
		return nil
	}
	generationHash, err := model.Hash256FromHex(generationHashHex)
	if err != nil {
		return errors.Wrapf(err, "invalid %s", CfgDecodeGenerationHash)
	}

	_, _ = fmt.Fprintf(w, "Hash: %s\n", signer.Hash(tx, generationHash))
	verify := signer.Verify
	if tx.Type().IsAggregate() {
		verify = signer.VerifyCosignatures
	}
	if err := verify(tx, generationHash); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, "Signatures: valid")

	return nil
}
