package lens_test

import (
	"reflect"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"
	"go.llib.dev/cursorkit/pkg/lens"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

type Account struct {
	Name    string
	Balance int
	Limits  Limits
}

type Limits struct {
	Daily   int
	Monthly int
}

var balance = lens.Of(
	func(a *Account) int { return a.Balance },
	func(a *Account, v int) { a.Balance = v },
)

var limits = lens.Of(
	func(a *Account) Limits { return a.Limits },
	func(a *Account, v Limits) { a.Limits = v },
)

var daily = lens.Of(
	func(l *Limits) int { return l.Daily },
	func(l *Limits, v int) { l.Daily = v },
)

func ExampleScale() {
	x := 5
	tripled := lens.Scale(lens.Pointer[int](), 3)
	_ = tripled.Get(&x) // 15
	tripled.Set(&x, 21)
	_ = x // 7
}

func ExampleBind() {
	var acc Account
	ref := lens.Bind(balance, &acc)
	ref.Set(10)
	ref.Modify(func(v int) int { return v * 2 })
	_ = acc.Balance // 20
}

func TestFunc(t *testing.T) {
	s := testcase.NewSpec(t)

	acc := testcase.Let(s, func(t *testcase.T) *Account {
		return &Account{Name: t.Random.String(), Balance: t.Random.Int()}
	})

	s.Test("Get reads the projection", func(t *testcase.T) {
		assert.Equal(t, acc.Get(t).Balance, balance.Get(acc.Get(t)))
	})

	s.Test("Set writes the backing value", func(t *testcase.T) {
		v := t.Random.Int()
		balance.Set(acc.Get(t), v)
		assert.Equal(t, v, acc.Get(t).Balance)
	})

	s.Test("TypeOf exposes the projected type", func(t *testcase.T) {
		assert.Equal(t, reflect.TypeOf(0), lens.TypeOf(balance))
		assert.Equal(t, reflect.TypeOf(Limits{}), lens.TypeOf(limits))
	})
}

func TestPointer(t *testing.T) {
	x := 1
	p := lens.Pointer[int]()
	assert.Equal(t, 1, p.Get(&x))
	p.Set(&x, 2)
	assert.Equal(t, 2, x)
}

func TestCompose(t *testing.T) {
	s := testcase.NewSpec(t)

	acc := testcase.Let(s, func(t *testcase.T) *Account {
		return &Account{Limits: Limits{Daily: 100, Monthly: 1000}}
	})
	subject := testcase.Let(s, func(t *testcase.T) lens.Lens[*Account, int] {
		return lens.Compose(limits, daily)
	})

	s.Test("Get reads through the outer projection", func(t *testcase.T) {
		assert.Equal(t, 100, subject.Get(t).Get(acc.Get(t)))
	})

	s.Test("Set updates only the focused part", func(t *testcase.T) {
		subject.Get(t).Set(acc.Get(t), 250)
		want := Account{Limits: Limits{Daily: 250, Monthly: 1000}}
		if diff := cmp.Diff(want, *acc.Get(t)); diff != "" {
			t.Fatalf("unexpected account (-want +got):\n%s", diff)
		}
	})
}

func TestBind(t *testing.T) {
	s := testcase.NewSpec(t)

	acc := testcase.Let(s, func(t *testcase.T) *Account {
		return &Account{Balance: t.Random.IntBetween(0, 100)}
	})

	s.Test("field, computed and decorated properties are used alike", func(t *testcase.T) {
		field := lens.Bind(balance, acc.Get(t))
		decorated := lens.Bind(lens.Scale(balance, 100), acc.Get(t))

		field.Set(3)
		assert.Equal(t, 3, field.Get())
		assert.Equal(t, 300, decorated.Get())

		decorated.Set(500)
		assert.Equal(t, 5, field.Get())
	})

	s.Test("Modify returns the new value", func(t *testcase.T) {
		start := acc.Get(t).Balance
		ref := lens.Bind(balance, acc.Get(t))
		got := ref.Modify(func(v int) int { return v + 1 })
		assert.Equal(t, start+1, got)
		assert.Equal(t, start+1, acc.Get(t).Balance)
	})
}

func TestOps(t *testing.T) {
	s := testcase.NewSpec(t)

	x := testcase.Let(s, func(t *testcase.T) *int {
		v := 12
		return &v
	})
	p := lens.Pointer[int]()

	s.Test("arithmetic", func(t *testcase.T) {
		assert.Equal(t, 15, lens.Add(p, x.Get(t), 3))
		assert.Equal(t, 10, lens.Sub(p, x.Get(t), 5))
		assert.Equal(t, 40, lens.Mul(p, x.Get(t), 4))
		assert.Equal(t, 8, lens.Div(p, x.Get(t), 5))
		assert.Equal(t, 2, lens.Mod(p, x.Get(t), 3))
		assert.Equal(t, 3, lens.Inc(p, x.Get(t)))
		assert.Equal(t, 2, lens.Dec(p, x.Get(t)))
		assert.Equal(t, 2, *x.Get(t))
	})

	s.Test("bitwise", func(t *testcase.T) {
		assert.Equal(t, 0b1000, lens.And(p, x.Get(t), 0b1001))
		assert.Equal(t, 0b1011, lens.Or(p, x.Get(t), 0b0011))
		assert.Equal(t, 0b0001, lens.Xor(p, x.Get(t), 0b1010))
		assert.Equal(t, 0b0100, lens.Shl(p, x.Get(t), 2))
		assert.Equal(t, 0b0001, lens.Shr(p, x.Get(t), 2))
	})

	s.Test("through a decorator", func(t *testcase.T) {
		doubled := lens.Scale(p, 2)
		assert.Equal(t, 30, lens.Add(doubled, x.Get(t), 6))
		assert.Equal(t, 15, *x.Get(t))
	})
}

func TestNegating(t *testing.T) {
	s := testcase.NewSpec(t)

	x := testcase.Let(s, func(t *testcase.T) *int {
		v := t.Random.IntBetween(-1000, 1000)
		return &v
	})
	subject := testcase.Let(s, func(t *testcase.T) lens.Negating[lens.Ptr[int], *int, int] {
		return lens.Negate(lens.Pointer[int]())
	})

	s.Test("Get negates", func(t *testcase.T) {
		assert.Equal(t, -*x.Get(t), subject.Get(t).Get(x.Get(t)))
	})

	s.Test("Set negates back", func(t *testcase.T) {
		v := t.Random.IntBetween(-1000, 1000)
		subject.Get(t).Set(x.Get(t), v)
		assert.Equal(t, -v, *x.Get(t))
		assert.Equal(t, v, subject.Get(t).Get(x.Get(t)))
	})

	s.Test("Add and Sub act on the inner value in reverse", func(t *testcase.T) {
		start := *x.Get(t)
		got := lens.Add(subject.Get(t), x.Get(t), 5)
		assert.Equal(t, start-5, *x.Get(t))
		assert.Equal(t, -(start - 5), got)

		got = lens.Sub(subject.Get(t), x.Get(t), 5)
		assert.Equal(t, start, *x.Get(t))
		assert.Equal(t, -start, got)
	})

	s.Test("double negation is the identity", func(t *testcase.T) {
		start := *x.Get(t)
		twice := lens.Negate(subject.Get(t))
		assert.Equal(t, start, twice.Get(x.Get(t)))
		assert.Equal(t, start+1, lens.Inc(twice, x.Get(t)))
		assert.Equal(t, start+1, *x.Get(t))
	})
}

func TestScaling(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("x=5 scaled by 3", func(t *testcase.T) {
		x := 5
		l := lens.Scale(lens.Pointer[int](), 3)
		assert.Equal(t, 15, l.Get(&x))
		l.Set(&x, 21)
		assert.Equal(t, 7, x)
		assert.Equal(t, 21, l.Get(&x))
		assert.Equal(t, 3, l.Factor())
	})

	s.Test("zero factor panics", func(t *testcase.T) {
		out := assert.Panic(t, func() { lens.Scale(lens.Pointer[float64](), 0) })
		err, ok := out.(error)
		assert.True(t, ok)
		assert.ErrorIs(t, err, lens.ErrZeroFactor)
	})

	s.Test("scaled negation round-trips", func(t *testcase.T) {
		var b float64
		chain := lens.Scale(lens.Negate(lens.Pointer[float64]()), 2)
		for range 16 {
			v := float64(t.Random.IntBetween(-1_000_000, 1_000_000)) / 8
			chain.Set(&b, v)
			assert.Equal(t, v, chain.Get(&b))
			assert.Equal(t, -v/2, b)
		}
	})

	s.Test("negated scaling round-trips", func(t *testcase.T) {
		var b int
		chain := lens.Negate(lens.Scale(lens.Pointer[int](), 2))
		v := t.Random.IntBetween(-1000, 1000) * 2
		chain.Set(&b, v)
		assert.Equal(t, v, chain.Get(&b))
		assert.Equal(t, -v/2, b)
	})
}

func TestDecimalScaling(t *testing.T) {
	s := testcase.NewSpec(t)

	dec := func(tb testing.TB, s string) *apd.Decimal {
		d, _, err := apd.NewFromString(s)
		assert.NoError(tb, err)
		return d
	}

	s.Test("a tenth is exact", func(t *testcase.T) {
		b := dec(t, "0")
		l := lens.ScaleDecimal(lens.Pointer[*apd.Decimal](), dec(t, "0.1"))
		l.Set(&b, dec(t, "0.3"))
		assert.Equal(t, 0, b.Cmp(dec(t, "3")))
		assert.Equal(t, 0, l.Get(&b).Cmp(dec(t, "0.3")))
	})

	s.Test("negated decimal scaling round-trips", func(t *testcase.T) {
		b := dec(t, "0")
		chain := lens.ScaleDecimal(lens.NegateDecimal(lens.Pointer[*apd.Decimal]()), dec(t, "2.5"))
		v := apd.New(int64(t.Random.IntBetween(-100000, 100000)), -3)
		chain.Set(&b, v)
		assert.Equal(t, 0, chain.Get(&b).Cmp(v))
	})

	s.Test("results carry no working precision padding", func(t *testcase.T) {
		b := dec(t, "0")
		l := lens.ScaleDecimal(lens.Pointer[*apd.Decimal](), dec(t, "0.1"))
		l.Set(&b, dec(t, "0.3"))
		assert.Equal(t, "3", b.String())
		assert.Equal(t, "0.3", l.Get(&b).String())

		neg := lens.ScaleDecimal(lens.NegateDecimal(lens.Pointer[*apd.Decimal]()), dec(t, "2"))
		neg.Set(&b, dec(t, "5"))
		assert.Equal(t, "-2.5", b.String())
		assert.Equal(t, "5", neg.Get(&b).String())
	})

	s.Test("factor is copied", func(t *testcase.T) {
		f := dec(t, "2")
		l := lens.ScaleDecimal(lens.Pointer[*apd.Decimal](), f)
		f.SetInt64(5)
		assert.Equal(t, 0, l.Factor().Cmp(dec(t, "2")))
	})

	s.Test("zero factor panics", func(t *testcase.T) {
		out := assert.Panic(t, func() { lens.ScaleDecimal(lens.Pointer[*apd.Decimal](), dec(t, "0.00")) })
		assert.ErrorIs(t, out.(error), lens.ErrZeroFactor)
	})
}
