package main

import (
	"encoding/binary"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/bytecursor"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	buf, err := bytecursor.New(64, binary.LittleEndian)
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 10000; i++ {
		buf.SetCursor(0)
		buf.WriteInt32(55)
		buf.WriteFloat32(5.5)
		buf.WriteASCIIString("Hello World")
		buf.SetCursor(0)
		buf.ReadNextInt32()
		buf.ReadNextFloat32()
		buf.ReadNextASCIIString()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
