package gf

import "math/big"

// The five field primes, one per supported mnemonic word count. Each is
// the least prime strictly greater than 2^(11*W), computed once offline
// with a deterministic Miller-Rabin test and hard-coded here so package
// initialization never has to search for a prime at startup.
var (
	prime12 = mustPrime("5444517870735015415413993718908291383363")
	prime15 = mustPrime("46768052394588893382517914646921056628989841375373")
	prime18 = mustPrime("401734511064747568885490523085290650630550748445698208825359")
	prime21 = mustPrime("3450873173395281893717377931138512726225554486085193277581262111899753")
	prime24 = mustPrime("29642774844752946028434172162224104410437116074403984394101141506025761187823791")
)

func mustPrime(dec string) *big.Int {
	p, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		panic("gf: malformed prime constant")
	}
	return p
}

// primeForWords returns the field prime for a W-word mnemonic, or nil if
// W is not one of the five supported lengths.
func primeForWords(w int) *big.Int {
	switch w {
	case 12:
		return prime12
	case 15:
		return prime15
	case 18:
		return prime18
	case 21:
		return prime21
	case 24:
		return prime24
	default:
		return nil
	}
}
