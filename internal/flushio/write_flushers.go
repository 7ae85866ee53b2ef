package flushio

import "io"

// WriteFlushers fans writes and flushes out to every given WriteFlusher,
// flattening nested combinations and dropping nils.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	var all multi
	for _, wf := range wfs {
		if many, ok := wf.(multi); ok {
			all = append(all, many...)
		} else if wf != nil {
			all = append(all, wf)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return all
	}
}

type multi []WriteFlusher

func (wfs multi) Write(p []byte) (n int, err error) {
	for _, wf := range wfs {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (wfs multi) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
