package saldo

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// run feeds input to a new interpreter and returns what it printed.
func run(t *testing.T, input string, opts ...Option) (string, *Interpreter) {
	t.Helper()
	var out bytes.Buffer
	i := NewInterpreter(&out, opts...)
	err := i.Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	return out.String(), i
}

func TestInterpreter_Transcript(t *testing.T) {
	input := `buy 100
sell 50
balance
sell 200
reset
balance
end
`
	want := `Saldo actual = -50.00 (1 compras y 1 ventas)
Saldo anterior = 150.00 (1 compras y 2 ventas)
Saldo actual = 0.00 (0 compras y 0 ventas)
`
	got, _ := run(t, input)
	assert.Equal(t, want, got)
}

func TestInterpreter_SpanishTranscript(t *testing.T) {
	input := `compra 100
venta 50
venta
venta cincuenta euros
compra 50€
saldo 666
saldo
venta 200
reset
saldo
fin
`
	want := `*ERROR* Entrada inválida
*ERROR* Entrada inválida
*ERROR* Entrada inválida
*ERROR* Entrada inválida
Saldo actual = -50.00 (1 compras y 1 ventas)
Saldo anterior = 150.00 (1 compras y 2 ventas)
Saldo actual = 0.00 (0 compras y 0 ventas)
`
	got, _ := run(t, input, WithKeywords(Spanish))
	assert.Equal(t, want, got)
}

func TestInterpreter_InvalidInputLeavesStateUnchanged(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{"empty line", ""},
		{"unknown command", "deposit 10"},
		{"wrong case", "BUY 10"},
		{"other vocabulary", "compra 10"},
		{"balance with amount", "balance 5"},
		{"reset with amount", "reset 1"},
		{"end with argument", "end now"},
		{"buy without amount", "buy"},
		{"sell without amount", "sell"},
		{"decimal amount", "buy 1.5"},
		{"plus sign", "sell +5"},
		{"currency symbol", "buy 50€"},
		{"minus but not a number", "sell -abc"},
		{"huge exponent", "sell -1e2000000000"},
		{"exponent", "buy -1E5"},
		{"three words", "sell 50 euros"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			i := NewInterpreter(&out)
			i.Exec("sell 10")
			before := i.Session().Snapshot()

			done := i.Exec(tc.line)

			assert.False(t, done)
			assert.Equal(t, MessageInvalidInput+"\n", out.String())
			assert.Equal(t, before, i.Session().Snapshot())
		})
	}
}

func TestInterpreter_NegativeAmounts(t *testing.T) {
	got, i := run(t, "buy -20\nsell -5\nsell -0.75\nbalance\n")
	assert.Equal(t, "Saldo actual = 14.25 (1 compras y 2 ventas)\n", got)
	assert.True(t, A(14.25).Equal(i.Session().Snapshot().Balance))
}

func TestInterpreter_EndStopsReading(t *testing.T) {
	got, i := run(t, "sell 1\nend\nsell 2\nbalance\n")
	assert.Empty(t, got)
	assert.Equal(t, 1, i.Session().Snapshot().Sells)
}

func TestInterpreter_EndOfInput(t *testing.T) {
	got, i := run(t, "sell 7\nbalance")
	assert.Equal(t, "Saldo actual = 7.00 (0 compras y 1 ventas)\n", got)
	assert.Equal(t, 1, i.Session().Snapshot().Sells)

	got, _ = run(t, "")
	assert.Empty(t, got)
}

func TestInterpreter_Prompt(t *testing.T) {
	got, _ := run(t, "balance\nend\n", WithPrompt("> "))
	assert.Equal(t, "> Saldo actual = 0.00 (0 compras y 0 ventas)\n> ", got)
}

func TestInterpreter_PromptAtEndOfInput(t *testing.T) {
	got, _ := run(t, "balance\n", WithPrompt("> "))
	assert.Equal(t, "> Saldo actual = 0.00 (0 compras y 0 ventas)\n> \n", got)
}

func TestInterpreter_LongLine(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want string
	}{
		{
			name: "over the limit",
			line: "sell " + strings.Repeat("0", 70000) + "1",
			want: MessageInvalidInput + "\nSaldo actual = 0.00 (0 compras y 0 ventas)\n",
		},
		{
			name: "far over the limit",
			line: strings.Repeat("x", 5*MaxLineLength),
			want: MessageInvalidInput + "\nSaldo actual = 0.00 (0 compras y 0 ventas)\n",
		},
		{
			name: "at the limit",
			line: "sell " + strings.Repeat("0", MaxLineLength-6) + "1",
			want: "Saldo actual = 1.00 (0 compras y 1 ventas)\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := run(t, tc.line+"\nbalance\nend\n")
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInterpreter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewInterpreter(&out).Run(ctx, strings.NewReader("balance\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestInterpreter_ReadError(t *testing.T) {
	var out bytes.Buffer
	err := NewInterpreter(&out).Run(context.Background(), failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestInterpreter_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	var out bytes.Buffer
	i := NewInterpreter(&out, WithLogger(zap.New(core)))

	i.Exec("buy 3")
	i.Exec("balance 3")

	applied := logs.FilterMessage("applied").All()
	require.Len(t, applied, 1)
	assert.Equal(t, "buy", applied[0].ContextMap()["command"])
	assert.Equal(t, i.Session().ID().String(), applied[0].ContextMap()["session"])

	rejected := logs.FilterMessage("rejected line").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, "balance 3", rejected[0].ContextMap()["line"])
}
