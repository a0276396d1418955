// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"glslarg/internal/lsp"
)

const lsName = "glslarg"

var handler protocol.Handler

func main() {
	verbosity := flag.Int("v", 1, "log verbosity (0 notice, 1 info, 2 debug)")
	logFile := flag.String("log", "", "log to this file instead of stderr")
	debug := flag.Bool("debug", false, "log every JSON-RPC message")
	flag.Parse()

	var path *string
	if *logFile != "" {
		path = logFile
	}
	commonlog.Configure(*verbosity, path)

	glslHandler := lsp.NewGlslHandler()

	handler = protocol.Handler{
		Initialize:                     glslHandler.Initialize,
		Initialized:                    glslHandler.Initialized,
		Shutdown:                       glslHandler.Shutdown,
		SetTrace:                       glslHandler.SetTrace,
		TextDocumentDidOpen:            glslHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           glslHandler.TextDocumentDidClose,
		TextDocumentDidChange:          glslHandler.TextDocumentDidChange,
		TextDocumentCompletion:         glslHandler.TextDocumentCompletion,
		TextDocumentHover:              glslHandler.TextDocumentHover,
		TextDocumentDocumentSymbol:     glslHandler.TextDocumentDocumentSymbol,
		TextDocumentSemanticTokensFull: glslHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, *debug)

	log := commonlog.GetLogger("glslarg.lsp")
	log.Info("starting glslarg language server")

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
