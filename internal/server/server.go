package server

// Server объединяет HTTP-серверы отдельных сущностей.
type Server struct {
	DealServer
	BoardServer
}

func NewServer(
	dealServer DealServer,
	boardServer BoardServer,
) Server {
	return Server{
		DealServer:  dealServer,
		BoardServer: boardServer,
	}
}
