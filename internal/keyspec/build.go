// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package keyspec

import (
	"code.hybscloud.com/discrim"
)

// Build returns a discriminator over keys parsed by s.
//
// Each field becomes a primitive discriminator (Uint8, Uint16, Bool,
// Natural, Trivial), wrapped in a Sum with a Trivial null class when
// optional and in Invert when descending. Fields are chained with
// left-biased products, so groups come out in lexicographic key order.
// sharing is passed to the splits of optional fields.
//
// Keys handed to the result must have been produced by s.Parse.
func Build[V any](s *Schema, sharing discrim.Sharing) discrim.Discriminator[Key, V] {
	return buildFrom[V](s.Fields, sharing)
}

func buildFrom[V any](fields []Field, sharing discrim.Sharing) discrim.Discriminator[Key, V] {
	if len(fields) == 1 {
		return discrim.Rename(head, fieldDisc[V](fields[0], sharing))
	}
	prod := discrim.ProductLeft[Value, Key, V](
		fieldDisc[discrim.Pair[Key, V]](fields[0], sharing),
		buildFrom[V](fields[1:], sharing),
	)
	return discrim.Rename(unconsKey, discrim.Discriminator[discrim.Pair[Value, Key], V](prod))
}

func head(k Key) Value { return k[0] }

func unconsKey(k Key) discrim.Pair[Value, Key] {
	return discrim.MakePair(k[0], k[1:])
}

// fieldDisc discriminates one field's values. W is the payload type the
// field discriminator carries, which differs between the last field and
// the fields that head a product.
func fieldDisc[W any](f Field, sharing discrim.Sharing) discrim.Discriminator[Value, W] {
	d := kindDisc[W](f)
	if f.Optional {
		sum := discrim.SumWith[struct{}, Value, W](discrim.Trivial[struct{}, W]{}, d, discrim.LeftBiased, sharing)
		d = discrim.Rename(nullable, discrim.Discriminator[discrim.Either[struct{}, Value], W](sum))
	}
	if f.Desc {
		d = discrim.Invert(d)
	}
	return d
}

func kindDisc[W any](f Field) discrim.Discriminator[Value, W] {
	switch f.Kind {
	case KindUint8:
		return discrim.Rename(asUint8, discrim.Discriminator[uint8, W](discrim.Uint8[W]()))
	case KindUint16:
		return discrim.Rename(asUint16, discrim.Discriminator[uint16, W](discrim.Uint16[W]()))
	case KindBool:
		return discrim.Rename(asBool, discrim.Discriminator[bool, W](discrim.Bool[W]()))
	case KindInt, KindEnum:
		return discrim.Rename(index, discrim.Discriminator[int, W](discrim.Natural[W](f.Limit)))
	}
	return discrim.Trivial[Value, W]{}
}

// nullable tags nulls Left so they sort before every present value.
func nullable(v Value) discrim.Either[struct{}, Value] {
	if v.Null {
		return discrim.Left[struct{}, Value](struct{}{})
	}
	return discrim.Right[struct{}](v)
}

func index(v Value) int { return v.N }
func asUint8(v Value) uint8 { return uint8(v.N) }
func asUint16(v Value) uint16 { return uint16(v.N) }
func asBool(v Value) bool { return v.N != 0 }
