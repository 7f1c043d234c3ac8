package model

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/churn-predictor/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// tinyNet red 3 → 2 (relu) → 1 (sigmoid) con pesos calculables a mano.
const tinyNet = `{
  "name": "tiny",
  "input_size": 3,
  "layers": [
    {"units": 2, "activation": "relu",    "weights": [[1, -1], [2, 0], [0, 3]], "bias": [0, 0.5]},
    {"units": 1, "activation": "sigmoid", "weights": [[1], [-1]],               "bias": [0]}
  ]
}`

func sigmoid(z float64) float64 { return 1 / (1 + math.Exp(-z)) }

func loadTiny(t *testing.T) *Network {
	t.Helper()
	n, err := Load(strings.NewReader(tinyNet), 3)
	require.NoError(t, err)
	return n
}

// ──────────────────────────────────────────────────────────────────────────────
// Pasada hacia adelante
// ──────────────────────────────────────────────────────────────────────────────

func TestPredict_ValorCalculadoAMano(t *testing.T) {
	n := loadTiny(t)

	// oculta: h0 = relu(1*1 + 2*1 + 0) = 3 ; h1 = relu(-1*1 + 3*1 + 0.5) = 2.5
	// salida: sigmoid(3 - 2.5) = sigmoid(0.5)
	p, err := n.Predict(context.Background(), []float64{1, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, sigmoid(0.5), p, 1e-12)
	assert.Equal(t, "tiny", n.Name())
}

func TestPredict_ReLUCortaNegativos(t *testing.T) {
	n := loadTiny(t)

	// h0 = relu(-2) = 0 ; h1 = relu(2 + 0.5) = 2.5 → sigmoid(-2.5)
	p, err := n.Predict(context.Background(), []float64{-2, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, sigmoid(-2.5), p, 1e-12)
}

func TestPredict_LongitudIncorrecta(t *testing.T) {
	n := loadTiny(t)
	_, err := n.Predict(context.Background(), []float64{1, 2})
	assert.ErrorIs(t, err, domain.ErrInference)
}

func TestPredict_ContextoCancelado(t *testing.T) {
	n := loadTiny(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := n.Predict(ctx, []float64{1, 1, 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPredict_SalidaLinealSeRecortaAUno(t *testing.T) {
	n, err := Load(strings.NewReader(`{
		"input_size": 1,
		"layers": [{"units": 1, "activation": "linear", "weights": [[10]], "bias": [0]}]
	}`), 1)
	require.NoError(t, err)

	p, err := n.Predict(context.Background(), []float64{1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)
	assert.Equal(t, "ann", n.Name(), "nombre por defecto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación del artefacto
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_ErroresDeForma(t *testing.T) {
	cases := map[string]string{
		"json inválido":       `{"input_size": 3,`,
		"input_size distinto": `{"input_size": 4, "layers": [{"units": 1, "weights": [[1],[1],[1],[1]], "bias": [0]}]}`,
		"sin capas":           `{"input_size": 3, "layers": []}`,
		"filas de pesos":      `{"input_size": 3, "layers": [{"units": 1, "weights": [[1],[1]], "bias": [0]}]}`,
		"columnas de pesos":   `{"input_size": 3, "layers": [{"units": 1, "weights": [[1],[1,2],[1]], "bias": [0]}]}`,
		"sesgos":              `{"input_size": 3, "layers": [{"units": 1, "weights": [[1],[1],[1]], "bias": []}]}`,
		"salida múltiple":     `{"input_size": 3, "layers": [{"units": 2, "weights": [[1,1],[1,1],[1,1]], "bias": [0,0]}]}`,
		"activación":          `{"input_size": 3, "layers": [{"units": 1, "activation": "softmax", "weights": [[1],[1],[1]], "bias": [0]}]}`,
		"campo desconocido":   `{"input_size": 3, "optimizer": "adam", "layers": []}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(raw), 3)
			assert.ErrorIs(t, err, domain.ErrModelArtifact)
		})
	}
}

func TestLoadFile_ArchivoInexistente(t *testing.T) {
	_, err := LoadFile("no/existe/ann.json")
	assert.ErrorIs(t, err, domain.ErrModelArtifact)
}

// El artefacto de ejemplo del repositorio es una regresión logística expresada
// como red de dos capas: relu(z) - relu(-z) = z, seguido de sigmoid.
func TestLoadFile_ArtefactoDelRepositorio(t *testing.T) {
	n, err := LoadFile("../../../models/ann.json")
	require.NoError(t, err)
	assert.Equal(t, "customer_churn_ann", n.Name())

	x := make([]float64, expectedInputSize)
	x[4] = 1.0 / 6.0 // tenure 12/72
	x[16], x[19], x[22] = 1, 1, 1

	p, err := n.Predict(context.Background(), x)
	require.NoError(t, err)

	first := n.layers[0]
	z := first.bias[0]
	for i, xi := range x {
		z += xi * first.weights[i*first.out]
	}
	assert.InDelta(t, sigmoid(z), p, 1e-12)
	assert.GreaterOrEqual(t, p, 0.0)
	assert.LessOrEqual(t, p, 1.0)
}
