// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pixelimage

import "sync"

// floatPool is a size-keyed arena of []float32 buffers, one sync.Pool per
// distinct size. Per-frame warp output is ephemeral, so recycling it here
// avoids a fresh allocation of the reference image's pixel count on every
// non-reference frame.
var floatPool = struct {
	sync.RWMutex
	m map[int]*sync.Pool
}{m: make(map[int]*sync.Pool)}

func sizedPool(size int) *sync.Pool {
	floatPool.RLock()
	pool := floatPool.m[size]
	floatPool.RUnlock()
	if pool != nil {
		return pool
	}

	floatPool.Lock()
	defer floatPool.Unlock()
	if pool = floatPool.m[size]; pool != nil {
		return pool
	}
	pool = &sync.Pool{
		New: func() interface{} {
			return make([]float32, size)
		},
	}
	floatPool.m[size] = pool
	return pool
}

// GetFloat returns a w x h Float image whose backing array was pulled from
// the arena, zeroed, rather than freshly allocated.
func GetFloat(w, h int) *Float {
	size := w * h
	data := sizedPool(size).Get().([]float32)
	for i := range data {
		data[i] = 0
	}
	return &Float{W: w, H: h, Data: data}
}

// PutFloat returns f's backing array to the arena. f must not be used
// afterwards.
func PutFloat(f *Float) {
	sizedPool(cap(f.Data)).Put(f.Data[:cap(f.Data)])
}
