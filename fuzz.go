package gerbex

func Fuzz(data []byte) int {
	doc, err := OpenBytes(data, &Options{})
	if err != nil {
		return 0
	}
	defer doc.Close()
	if err := doc.Parse(); err != nil {
		return 0
	}
	return 1
}
