package transaction

import (
	"strconv"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/model"
)

// Transfer sends mosaics and an optional message to a recipient.
type Transfer struct {
	recipient model.UnresolvedAddress
	message   []byte
	mosaics   []model.Mosaic
}

// NewTransfer is the constructor for Transfer bodies.
func NewTransfer(recipient model.UnresolvedAddress, message []byte, mosaics ...model.Mosaic) (transfer *Transfer, err error) {
	if err = checkLength(len(message), MaxPayloadLength, "Transfer message"); err != nil {
		return
	}
	if mosaics, err = newCollection(mosaics, "Transfer mosaics"); err != nil {
		return
	}

	return &Transfer{
		recipient: recipient,
		message:   cloneBytes(message),
		mosaics:   mosaics,
	}, nil
}

// TransferFromBytes unmarshals a Transfer from a sequence of bytes.
func TransferFromBytes(bytes []byte) (transfer *Transfer, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if transfer, err = TransferFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Transfer from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// TransferFromMarshalUtil unmarshals a Transfer using a MarshalUtil (for easier unmarshaling).
func TransferFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (transfer *Transfer, err error) {
	transfer = &Transfer{}
	if transfer.recipient, err = model.UnresolvedAddressFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse recipient: %w", err)
	}
	if transfer.message, err = readPayload(marshalUtil, "message"); err != nil {
		return nil, err
	}
	if transfer.mosaics, err = collectionFromMarshalUtil(marshalUtil, model.MosaicFromMarshalUtil, "mosaics"); err != nil {
		return nil, err
	}

	return transfer, nil
}

// Recipient returns the (possibly aliased) receiver of the Transfer.
func (t *Transfer) Recipient() model.UnresolvedAddress {
	return t.recipient
}

// Message returns a copy of the attached message.
func (t *Transfer) Message() []byte {
	return cloneBytes(t.message)
}

// Mosaics returns a copy of the attached mosaics in wire order.
func (t *Transfer) Mosaics() []model.Mosaic {
	return cloneSlice(t.mosaics)
}

// Type returns the TransactionType of the Transfer.
func (t *Transfer) Type() model.TransactionType {
	return model.TransferTransactionType
}

// Size returns the amount of bytes of the marshaled Transfer.
func (t *Transfer) Size() int {
	return model.UnresolvedAddressLength + marshalutil.Uint16Size + len(t.message) + collectionSize(t.mosaics)
}

// Bytes returns a marshaled version of the Transfer.
func (t *Transfer) Bytes() []byte {
	marshalUtil := marshalutil.New(t.Size()).WriteBytes(t.recipient.Bytes())
	writePayload(marshalUtil, t.message)
	writeCollection(marshalUtil, t.mosaics)

	return marshalUtil.Bytes()
}

// String returns a human-readable version of the Transfer.
func (t *Transfer) String() string {
	structBuilder := stringify.StructBuilder("Transfer",
		stringify.StructField("recipient", t.recipient),
		stringify.StructField("message", string(t.message)),
	)
	for i, mosaic := range t.mosaics {
		structBuilder.AddField(stringify.StructField("mosaic"+strconv.Itoa(i), mosaic))
	}

	return structBuilder.String()
}

// code contract (make sure the type implements all required methods)
var _ Body = &Transfer{}
