////////////////////////////////////////////////////////////////////////////////
// qfund: quadratic-funding matching-pool contract
// local debug runner - replays a small funding round against file-backed state
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/lmittmann/tint"

	"qfund/contract"
	"qfund/sdk"
)

func main() {
	stateFile := flag.String("state", "state.json", "json snapshot file for contract kv state")
	flag.Parse()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))

	// each run replays the round from a clean slate; the snapshot file is
	// for inspecting the final state afterwards
	_ = os.Remove(*stateFile)
	state := sdk.NewFileState(*stateFile)
	bank := &sdk.MemBank{}
	runner := contract.NewRunner(state, bank, sdk.FuncLogger(func(line string) {
		log.Debug("event", "line", line)
	}))

	env := sdk.Env{BlockHeight: 100, BlockTime: 1_700_000_000, TxID: "local-demo"}
	admin := sdk.MessageInfo{
		Sender: "hive:admin",
		Funds:  []sdk.Coin{sdk.NewCoin(sdk.DenomHive, 1000)},
	}

	call := func(info sdk.MessageInfo, action, payload string) {
		resp, err := runner.Execute(env, info, action, payload)
		if err != nil {
			log.Error("call failed", "action", action, "err", err)
			os.Exit(1)
		}
		log.Info("call ok", "action", action, "resp", resp)
	}

	call(admin, contract.ActionInstantiate, `{
		"admin": "hive:admin",
		"leftover": "hive:community-fund",
		"budget_denom": "hive",
		"budget_amount": 1000,
		"proposal_period": {"time": 1700000600},
		"voting_period": {"time": 1700001200},
		"algorithm": "clr"
	}`)

	call(sdk.MessageInfo{Sender: "hive:alice"}, contract.ActionCreateProposal,
		`{"title":"park cleanup","description":"weekend cleanup crew","fund_address":"hive:parks"}`)
	call(sdk.MessageInfo{Sender: "hive:bob"}, contract.ActionCreateProposal,
		`{"title":"tool library","description":"shared tools for the block","fund_address":"hive:tools"}`)

	vote := func(sender string, id, amount uint64) {
		info := sdk.MessageInfo{
			Sender: sdk.Address(sender),
			Funds:  []sdk.Coin{sdk.NewCoin(sdk.DenomHive, amount)},
		}
		env.BlockTime = 1_700_000_700 // inside the voting window
		call(info, contract.ActionVoteProposal, `{"proposal_id":` + strconv.FormatUint(id, 10) + `}`)
	}
	vote("hive:carol", 1, 25)
	vote("hive:dave", 1, 25)
	vote("hive:erin", 2, 100)

	env.BlockTime = 1_700_002_000 // voting closed
	call(admin, contract.ActionTriggerDistribution, `{}`)

	for _, tr := range bank.Transfers {
		log.Info("transfer", "to", tr.To.String(), "amount", tr.Amount.String())
	}

	all, err := runner.Query(contract.QueryAllProposals, `{}`)
	if err != nil {
		log.Error("query failed", "err", err)
		os.Exit(1)
	}
	log.Info("final proposals", "json", all)
}
