package material

import (
	"math/rand"

	"github.com/skovert/go-pathrender/pkg/core"
)

// fixedSampler returns the same value on every 1D draw; 2D/3D draws return
// the value in every component. Used to force one branch of a stochastic
// material decision.
type fixedSampler struct {
	value float64
}

func (f fixedSampler) Get1D() float64            { return f.value }
func (f fixedSampler) Get2D() (float64, float64) { return f.value, f.value }
func (f fixedSampler) Get3D() core.Vec3          { return core.NewVec3(f.value, f.value, f.value) }

func seededSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}
