package db

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kiroween-labs/soul-harvest-vault/internal/types"
)

var tUint64 = reflect.TypeOf(uint64(0))

// NewRegistry returns the default bson registry with uint64 stored as
// Decimal128, so balances keep the full unsigned range and still work with
// $sum, $inc and numeric sorts.
func NewRegistry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(tUint64, uint64Codec{})
	reg.RegisterTypeDecoder(tUint64, uint64Codec{})
	return reg
}

type uint64Codec struct{}

func (uint64Codec) EncodeValue(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Kind() != reflect.Uint64 {
		return bsoncodec.ValueEncoderError{Name: "Uint64EncodeValue", Kinds: []reflect.Kind{reflect.Uint64}, Received: val}
	}

	d, err := primitive.ParseDecimal128(strconv.FormatUint(val.Uint(), 10))
	if err != nil {
		return err
	}
	return vw.WriteDecimal128(d)
}

func (uint64Codec) DecodeValue(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Kind() != reflect.Uint64 {
		return bsoncodec.ValueDecoderError{Name: "Uint64DecodeValue", Kinds: []reflect.Kind{reflect.Uint64}, Received: val}
	}

	var (
		v   uint64
		err error
	)
	switch vr.Type() {
	case bsontype.Decimal128:
		var d primitive.Decimal128
		if d, err = vr.ReadDecimal128(); err != nil {
			return err
		}
		v, err = decimalToUint64(d)
	case bsontype.Int64:
		var i int64
		if i, err = vr.ReadInt64(); err != nil {
			return err
		}
		v, err = signedToUint64(i)
	case bsontype.Int32:
		var i int32
		if i, err = vr.ReadInt32(); err != nil {
			return err
		}
		v, err = signedToUint64(int64(i))
	case bsontype.Double:
		var f float64
		if f, err = vr.ReadDouble(); err != nil {
			return err
		}
		if f < 0 || f >= math.MaxUint64 || f != math.Trunc(f) {
			err = errorsmod.Wrapf(types.ErrArithmeticOverflow, "double %v is not a uint64", f)
		} else {
			v = uint64(f)
		}
	case bsontype.Null:
		err = vr.ReadNull()
	default:
		return fmt.Errorf("cannot decode %v into a uint64", vr.Type())
	}
	if err != nil {
		return err
	}

	val.SetUint(v)
	return nil
}

func signedToUint64(i int64) (uint64, error) {
	if i < 0 {
		return 0, errorsmod.Wrapf(types.ErrArithmeticOverflow, "negative value %d", i)
	}
	return uint64(i), nil
}

// maxUint64Digits bounds the exponent scaling; any larger positive exponent on
// a non-zero significand exceeds uint64.
const maxUint64Digits = 20

func decimalToUint64(d primitive.Decimal128) (uint64, error) {
	significand, exp, err := d.BigInt()
	if err != nil {
		return 0, err
	}

	switch {
	case significand.Sign() == 0:
		return 0, nil
	case exp > maxUint64Digits:
		return 0, errorsmod.Wrapf(types.ErrArithmeticOverflow, "decimal %s exceeds uint64", d)
	case exp > 0:
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
		significand.Mul(significand, scale)
	case exp < 0:
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-exp)), nil)
		var rem big.Int
		significand.QuoRem(significand, scale, &rem)
		if rem.Sign() != 0 {
			return 0, fmt.Errorf("decimal %s is not an integer", d)
		}
	}

	if significand.Sign() < 0 || !significand.IsUint64() {
		return 0, errorsmod.Wrapf(types.ErrArithmeticOverflow, "decimal %s exceeds uint64", d)
	}
	return significand.Uint64(), nil
}
