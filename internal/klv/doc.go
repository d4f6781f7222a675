// Package klv provides KLV triplets (SMPTE ST 336) and the minimal reader
// and writer needed to hand them to a metadata dictionary.
//
// A Triplet is the unit a binary decoder looks up: its key is resolved
// against a dictionary with Resolve, and the resulting definition tells the
// decoder how to interpret the value.
//
//	r := klv.NewReader(f)
//	for {
//	    t, err := r.ReadTriplet()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    def, ok := klv.Resolve(dictionary, t)
//	    ...
//	}
package klv
