// Command diagcand wires a loopback ISO-TP device to a UDS session and
// exercises DiagnosticSessionControl/TesterPresent against it, for manual
// testing without CAN hardware. It also serves Prometheus metrics for the
// ISO-TP engine on :9116.
package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rob-gra/go-diagcan/clog"
	"github.com/rob-gra/go-diagcan/isotp/transport"
	"github.com/rob-gra/go-diagcan/metrics"
	"github.com/rob-gra/go-diagcan/uds"
	"github.com/rob-gra/go-diagcan/uds/common"
	"github.com/rob-gra/go-diagcan/uds/request"
)

func main() {
	log := clog.NewLogger("diagcand")
	log.LogMode(true)

	sink := metrics.NewSink(prometheus.DefaultRegisterer, prometheus.Labels{"app": "diagcand"})

	addr := transport.Address{TxID: 0x7E0, RxID: 0x7E8, FID: 0x7DF}
	ecu := newLoopbackECU(addr.RxID)
	engine, err := transport.NewEngine(ecu, newCanFrame, "can0", addr, transport.DefaultConfig())
	if err != nil {
		log.Critical("build engine: %v", err)
		os.Exit(1)
	}
	engine.SetMetrics(sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	engine.Start(ctx)
	defer engine.Stop()

	session := uds.NewSession(engine, common.DidConfig{}, 1000)
	session.Log = log
	session.SetMetrics(sink)

	go func() {
		http.Handle("/metrics", promhttp.Handler())
		log.Error("metrics server stopped: %v", http.ListenAndServe(":9116", nil))
	}()

	req, err := request.SessionCtrl(request.ExtendedDiagnosticSession, false)
	if err != nil {
		log.Critical("build session control request: %v", err)
		os.Exit(1)
	}
	resp, err := session.Exchange(ctx, req)
	if err != nil {
		log.Critical("session control exchange: %v", err)
		os.Exit(1)
	}
	log.Debug("session control response: negative=%v data=% x", resp.Negative, resp.Data)

	for {
		req, err := request.TesterPresent(false)
		if err != nil {
			log.Critical("build tester present request: %v", err)
			os.Exit(1)
		}
		if _, err := session.Exchange(ctx, req); err != nil {
			log.Error("tester present exchange: %v", err)
		}
		time.Sleep(2 * time.Second)
	}
}
