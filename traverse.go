package leopard16

// Shared additive-FFT/IFFT traversal, parameterized over an Engine's
// leaf butterfly operations. Every Variant's FFT/IFFT method delegates
// here; only FFTButterfly/IFFTButterfly/XorWithin/Mul differ between
// variants. Ported from bpfs-defs/reedsolomon/leopard.go's
// ifftDITEncoder/ifftDITDecoder/fftDIT/fftDIT4Ref/ifftDIT4Ref, with the
// `*options` parameter generalized to the Engine interface.

// runFFT is the in-place truncated forward FFT shared by encode (to
// materialize the recovery block) and decode (to rebuild the full
// spectrum). Ported from fftDIT.
func runFFT(eng Engine, work [][]byte, mtrunc, m int, skewLUT []ffe) {
	dist4 := m
	dist := m >> 2
	for dist != 0 {
		for r := 0; r < mtrunc; r += dist4 {
			iEnd := r + dist
			logM01 := skewLUT[iEnd-1]
			logM02 := skewLUT[iEnd+dist-1]
			logM23 := skewLUT[iEnd+dist*2-1]
			for i := r; i < iEnd; i++ {
				fftDIT4(work[i:], dist, logM01, logM23, logM02, eng)
			}
		}
		dist4 = dist
		dist >>= 2
	}

	if dist4 == 2 {
		for r := 0; r < mtrunc; r += 2 {
			logM := skewLUT[r]
			if logM == modulus {
				eng.XorWithin(work[r+1], work[r])
			} else {
				eng.FFTButterfly(work[r], work[r+1], logM)
			}
		}
	}
}

// runIFFTEncode copies data[0:mtrunc] into work, zero-pads the rest to
// m, runs the truncated inverse FFT, and (if xorRes is non-nil) XORs the
// first m rows of the result into it. Ported from ifftDITEncoder.
// skewLUT must already be offset by the caller the way the encoder does
// (fftSkew[m-1:] sliced further per recursive block).
func runIFFTEncode(eng Engine, data [][]byte, mtrunc int, work, xorRes [][]byte, m int, skewLUT []ffe) {
	for i := 0; i < mtrunc; i++ {
		copy(work[i], data[i])
	}
	for i := mtrunc; i < m; i++ {
		memclr(work[i])
	}

	dist := 1
	dist4 := 4
	for dist4 <= m {
		for r := 0; r < mtrunc; r += dist4 {
			iend := r + dist
			logM01 := skewLUT[iend]
			logM02 := skewLUT[iend+dist]
			logM23 := skewLUT[iend+dist*2]
			for i := r; i < iend; i++ {
				ifftDIT4(work[i:], dist, logM01, logM23, logM02, eng)
			}
		}
		dist = dist4
		dist4 <<= 2
	}

	if dist < m {
		if dist*2 != m {
			panic("leopard16: internal error: unexpected truncated-FFT block size")
		}
		logM := skewLUT[dist]
		if logM == modulus {
			for i := 0; i < dist; i++ {
				eng.XorWithin(work[i+dist], work[i])
			}
		} else {
			for i := 0; i < dist; i++ {
				eng.IFFTButterfly(work[i], work[i+dist], logM)
			}
		}
	}

	if xorRes != nil {
		for i := 0; i < m; i++ {
			eng.XorWithin(xorRes[i], work[i])
		}
	}
}

// runIFFTDecode runs the truncated inverse FFT in place over work[0:m),
// used by decode to bring the weighted received shards back to the
// "data" domain before the formal derivative. Ported from
// ifftDITDecoder; note the skewLUT indexing is offset differently than
// runIFFTEncode's because the caller passes the raw, unsliced skew
// table here.
func runIFFTDecode(eng Engine, mtrunc int, work [][]byte, m int, skewLUT []ffe) {
	dist := 1
	dist4 := 4
	for dist4 <= m {
		for r := 0; r < mtrunc; r += dist4 {
			iend := r + dist
			logM01 := skewLUT[iend-1]
			logM02 := skewLUT[iend+dist-1]
			logM23 := skewLUT[iend+dist*2-1]
			for i := r; i < iend; i++ {
				ifftDIT4(work[i:], dist, logM01, logM23, logM02, eng)
			}
		}
		dist = dist4
		dist4 <<= 2
	}

	if dist < m {
		if dist*2 != m {
			panic("leopard16: internal error: unexpected truncated-FFT block size")
		}
		logM := skewLUT[dist-1]
		if logM == modulus {
			for i := 0; i < dist; i++ {
				eng.XorWithin(work[i+dist], work[i])
			}
		} else {
			for i := 0; i < dist; i++ {
				eng.IFFTButterfly(work[i], work[i+dist], logM)
			}
		}
	}
}

// fftDIT4/ifftDIT4 are the 4-way butterfly building blocks shared by
// every traversal above. Ported from fftDIT4Ref/ifftDIT4Ref.
func fftDIT4(work [][]byte, dist int, logM01, logM23, logM02 ffe, eng Engine) {
	if len(work[0]) == 0 {
		return
	}
	if logM02 == modulus {
		eng.XorWithin(work[dist*2], work[0])
		eng.XorWithin(work[dist*3], work[dist])
	} else {
		eng.FFTButterfly(work[0], work[dist*2], logM02)
		eng.FFTButterfly(work[dist], work[dist*3], logM02)
	}

	if logM01 == modulus {
		eng.XorWithin(work[dist], work[0])
	} else {
		eng.FFTButterfly(work[0], work[dist], logM01)
	}
	if logM23 == modulus {
		eng.XorWithin(work[dist*3], work[dist*2])
	} else {
		eng.FFTButterfly(work[dist*2], work[dist*3], logM23)
	}
}

func ifftDIT4(work [][]byte, dist int, logM01, logM23, logM02 ffe, eng Engine) {
	if len(work[0]) == 0 {
		return
	}
	if logM01 == modulus {
		eng.XorWithin(work[dist], work[0])
	} else {
		eng.IFFTButterfly(work[0], work[dist], logM01)
	}
	if logM23 == modulus {
		eng.XorWithin(work[dist*3], work[dist*2])
	} else {
		eng.IFFTButterfly(work[dist*2], work[dist*3], logM23)
	}

	if logM02 == modulus {
		eng.XorWithin(work[dist*2], work[0])
		eng.XorWithin(work[dist*3], work[dist])
	} else {
		eng.IFFTButterfly(work[0], work[dist*2], logM02)
		eng.IFFTButterfly(work[dist], work[dist*3], logM02)
	}
}

func memclr(s []byte) {
	for i := range s {
		s[i] = 0
	}
}
