// Package model implementa el clasificador de churn a partir de una red neuronal
// densa (feed-forward) exportada a JSON.
//
// Formato del artefacto:
//
//	{
//	  "name": "customer_churn_ann",
//	  "input_size": 26,
//	  "layers": [
//	    {"units": 16, "activation": "relu",    "weights": [[...16] x 26], "bias": [...16]},
//	    {"units": 1,  "activation": "sigmoid", "weights": [[...1] x 16],  "bias": [b]}
//	  ]
//	}
//
// weights[i][j] es el peso de la entrada i hacia la unidad j (mismo layout que el
// kernel de una capa Dense de Keras), de modo que la exportación es un volcado directo.
package model

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jhoicas/churn-predictor/internal/application/ports"
	"github.com/jhoicas/churn-predictor/internal/domain"
)

// Verificar en tiempo de compilación que Network implementa ChurnClassifier.
var _ ports.ChurnClassifier = (*Network)(nil)

// Activation función de activación de una capa.
type Activation string

const (
	ActivationReLU    Activation = "relu"
	ActivationSigmoid Activation = "sigmoid"
	ActivationTanh    Activation = "tanh"
	ActivationLinear  Activation = "linear"
)

// ── Formato en disco ──────────────────────────────────────────────────────────

type artifact struct {
	Name      string          `json:"name"`
	InputSize int             `json:"input_size"`
	Layers    []artifactLayer `json:"layers"`
}

type artifactLayer struct {
	Units      int         `json:"units"`
	Activation Activation  `json:"activation"`
	Weights    [][]float64 `json:"weights"`
	Bias       []float64   `json:"bias"`
}

// ── Red cargada ───────────────────────────────────────────────────────────────

type layer struct {
	in, out    int
	weights    []float64 // fila-mayor: weights[i*out+j]
	bias       []float64
	activation Activation
}

// Network red densa inmutable tras la carga.
type Network struct {
	name      string
	inputSize int
	layers    []layer
}

// LoadFile lee y valida el artefacto desde disco.
func LoadFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: abrir %s: %v", domain.ErrModelArtifact, path, err)
	}
	defer f.Close()
	return Load(f, expectedInputSize)
}

// expectedInputSize tamaño del vector que produce el codificador de características.
const expectedInputSize = 26

// Load decodifica el artefacto y valida la coherencia de formas.
// inputSize es el tamaño que debe declarar la primera capa.
func Load(r io.Reader, inputSize int) (*Network, error) {
	var a artifact
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: decodificar JSON: %v", domain.ErrModelArtifact, err)
	}

	if a.InputSize != inputSize {
		return nil, fmt.Errorf("%w: input_size=%d, se esperaba %d", domain.ErrModelArtifact, a.InputSize, inputSize)
	}
	if len(a.Layers) == 0 {
		return nil, fmt.Errorf("%w: la red no tiene capas", domain.ErrModelArtifact)
	}

	n := &Network{name: a.Name, inputSize: a.InputSize}
	if n.name == "" {
		n.name = "ann"
	}

	in := a.InputSize
	for idx, al := range a.Layers {
		l, err := buildLayer(idx, in, al)
		if err != nil {
			return nil, err
		}
		n.layers = append(n.layers, l)
		in = l.out
	}
	if in != 1 {
		return nil, fmt.Errorf("%w: la última capa debe tener 1 unidad, tiene %d", domain.ErrModelArtifact, in)
	}
	return n, nil
}

func buildLayer(idx, in int, al artifactLayer) (layer, error) {
	switch al.Activation {
	case ActivationReLU, ActivationSigmoid, ActivationTanh, ActivationLinear:
	case "":
		al.Activation = ActivationLinear
	default:
		return layer{}, fmt.Errorf("%w: capa %d: activación %q no soportada", domain.ErrModelArtifact, idx, al.Activation)
	}
	if al.Units <= 0 {
		return layer{}, fmt.Errorf("%w: capa %d: units debe ser positivo", domain.ErrModelArtifact, idx)
	}
	if len(al.Weights) != in {
		return layer{}, fmt.Errorf("%w: capa %d: %d filas de pesos, se esperaban %d", domain.ErrModelArtifact, idx, len(al.Weights), in)
	}
	if len(al.Bias) != al.Units {
		return layer{}, fmt.Errorf("%w: capa %d: %d sesgos, se esperaban %d", domain.ErrModelArtifact, idx, len(al.Bias), al.Units)
	}

	l := layer{
		in:         in,
		out:        al.Units,
		weights:    make([]float64, 0, in*al.Units),
		bias:       append([]float64(nil), al.Bias...),
		activation: al.Activation,
	}
	for i, row := range al.Weights {
		if len(row) != al.Units {
			return layer{}, fmt.Errorf("%w: capa %d: fila %d con %d pesos, se esperaban %d", domain.ErrModelArtifact, idx, i, len(row), al.Units)
		}
		l.weights = append(l.weights, row...)
	}
	return l, nil
}

// Name identifica el artefacto cargado.
func (n *Network) Name() string { return n.name }

// Predict ejecuta la pasada hacia adelante y devuelve la salida de la única neurona final.
func (n *Network) Predict(ctx context.Context, features []float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(features) != n.inputSize {
		return 0, fmt.Errorf("%w: vector de %d características, el modelo espera %d", domain.ErrInference, len(features), n.inputSize)
	}

	x := features
	for _, l := range n.layers {
		x = l.forward(x)
	}

	p := x[0]
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("%w: salida no numérica (%v)", domain.ErrInference, p)
	}
	return math.Min(1, math.Max(0, p)), nil
}

func (l layer) forward(x []float64) []float64 {
	out := make([]float64, l.out)
	copy(out, l.bias)
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		row := l.weights[i*l.out : (i+1)*l.out]
		for j, w := range row {
			out[j] += xi * w
		}
	}
	for j := range out {
		out[j] = activate(l.activation, out[j])
	}
	return out
}

func activate(a Activation, z float64) float64 {
	switch a {
	case ActivationReLU:
		return math.Max(0, z)
	case ActivationSigmoid:
		return 1 / (1 + math.Exp(-z))
	case ActivationTanh:
		return math.Tanh(z)
	default:
		return z
	}
}
